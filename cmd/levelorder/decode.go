package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var (
	ErrUsage       = errors.New("invalid arguments")
	ErrBadSequence = errors.New("the input is not an array of integers and nulls")
)

func decodeReader(in io.Reader, isCBOR bool) ([]*int, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if isCBOR {
		return decodeCBOR(data)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) ([]*int, error) {
	var seq []*int
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSequence, err)
	}
	return seq, nil
}

// decodeCBOR reads a CBOR array, CBOR null entries decode as absent values.
func decodeCBOR(data []byte) ([]*int, error) {
	var seq []*int
	if err := cbor.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSequence, err)
	}
	return seq, nil
}
