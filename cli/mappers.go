package main

import (
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

// hexMapper parses flag values as base-16 so IDs can be given the way lsusb
// prints them.
type hexMapper struct {
}

func (h hexMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("hex", &value)
	if err != nil {
		return err
	}
	i, err := strconv.ParseInt(value, 16, 64)
	if err != nil {
		return err
	}
	target.SetInt(i)
	return nil
}
