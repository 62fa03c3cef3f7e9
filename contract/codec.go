package contract

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/zkvoting/exovote/types"
)

// Binary layout of the host-boundary parameters. Integers are
// little-endian; strings and lists are length-prefixed with a uint32; the
// verifier key and the signature are raw fixed-width byte strings.

// maxParameterSize bounds a serialized parameter, mirroring the host's
// limit on transaction payloads.
const maxParameterSize = 65535

// InitFromBytes decodes a binary InitParameter and creates the election.
// Any decoding failure is reported as ErrParsingFailed.
func InitFromBytes(raw []byte) (*Election, error) {
	var p InitParameter
	if err := p.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	return Init(p)
}

// VoteFromBytes decodes a binary VoteParameter and applies it as a vote.
// Any decoding failure is reported as ErrParsingFailed with the election
// state untouched.
func (e *Election) VoteFromBytes(ctx ReceiveContext, raw []byte) error {
	var p VoteParameter
	if err := p.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	return e.Vote(ctx, p)
}

// MarshalBinary encodes the parameter in the host binary layout.
func (p InitParameter) MarshalBinary() ([]byte, error) {
	if len(p.VerifierKey) != 32 {
		return nil, fmt.Errorf("verifier key length %d, expected 32", len(p.VerifierKey))
	}
	var buf bytes.Buffer
	writeString(&buf, p.Description)
	writeUint32(&buf, uint32(len(p.Options)))
	for _, option := range p.Options {
		writeString(&buf, option)
	}
	writeUint64(&buf, uint64(p.EndTime.UnixMilli()))
	buf.Write(p.VerifierKey)
	if buf.Len() > maxParameterSize {
		return nil, fmt.Errorf("parameter size %d exceeds limit %d", buf.Len(), maxParameterSize)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the parameter from the host binary layout,
// rejecting truncated or oversized input.
func (p *InitParameter) UnmarshalBinary(raw []byte) error {
	r := bytes.NewReader(raw)
	description, err := readString(r)
	if err != nil {
		return fmt.Errorf("description: %w", err)
	}
	count, err := readUint32(r)
	if err != nil {
		return fmt.Errorf("options length: %w", err)
	}
	if uint64(count) > uint64(r.Len()) {
		return fmt.Errorf("options length %d exceeds remaining input", count)
	}
	options := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		option, err := readString(r)
		if err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
		options = append(options, option)
	}
	millis, err := readUint64(r)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	key := make(types.HexBytes, 32)
	if _, err := io.ReadFull(r, key); err != nil {
		return fmt.Errorf("verifier key: %w", err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("%d trailing bytes", r.Len())
	}
	p.Description = description
	p.Options = options
	p.EndTime = time.UnixMilli(int64(millis)).UTC()
	p.VerifierKey = key
	return nil
}

// MarshalBinary encodes the parameter in the host binary layout.
func (p VoteParameter) MarshalBinary() ([]byte, error) {
	if len(p.Signature) != types.SignatureLength {
		return nil, fmt.Errorf("signature length %d, expected %d", len(p.Signature), types.SignatureLength)
	}
	var buf bytes.Buffer
	writeString(&buf, p.CountryCode)
	buf.Write(p.Signature)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the parameter from the host binary layout,
// rejecting truncated or oversized input.
func (p *VoteParameter) UnmarshalBinary(raw []byte) error {
	r := bytes.NewReader(raw)
	code, err := readString(r)
	if err != nil {
		return fmt.Errorf("country code: %w", err)
	}
	signature := make(types.HexBytes, types.SignatureLength)
	if _, err := io.ReadFull(r, signature); err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("%d trailing bytes", r.Len())
	}
	p.CountryCode = code
	p.Signature = signature
	return nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint32(buf, uint32(len(s)))
	buf.WriteString(s)
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readUint64(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func readString(r *bytes.Reader) (string, error) {
	length, err := readUint32(r)
	if err != nil {
		return "", err
	}
	if uint64(length) > uint64(r.Len()) {
		return "", fmt.Errorf("string length %d exceeds remaining input", length)
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
