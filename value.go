package enum

import (
	"fmt"
	"io"

	"deedles.dev/enum/internal/bin"
)

// A Value is a single value of an enumeration type. It holds an
// integer and the Type it belongs to; the integer is not required to
// be a declared member, so a Value decoded from an unexpected byte
// pattern is still representable and only fails when its name is
// asked for.
type Value struct {
	t *Type
	v int64
}

// Of wraps v as a value of t. No validation against the declared
// members is performed.
func (t *Type) Of(v int64) Value {
	return Value{t: t, v: v}
}

// Decode reads exactly t.Size() bytes from r and decodes them, in the
// host's native byte order, as a value of t. Fewer available bytes is
// an error wrapping io.ErrUnexpectedEOF.
func (t *Type) Decode(r io.Reader) (Value, error) {
	raw, err := bin.Read(r, t.storage.Size())
	if err != nil {
		return Value{}, fmt.Errorf("decode %v value: %w", t, err)
	}
	return t.Of(t.storage.extend(raw)), nil
}

// DecodeBytes decodes a value of t from the first t.Size() bytes of
// buf.
func (t *Type) DecodeBytes(buf []byte) (Value, error) {
	if len(buf) < t.storage.Size() {
		return Value{}, fmt.Errorf("decode %v value: %w", t, io.ErrUnexpectedEOF)
	}
	return t.Of(t.storage.extend(bin.Get(buf[:t.storage.Size()]))), nil
}

// Normalize prepares param for use where a value of t is expected,
// such as a foreign-call boundary. A Value of t passes through
// unchanged, a raw integer of any Go integer kind is wrapped via Of,
// and a Value of a different Type is a MixedTypesError.
func (t *Type) Normalize(param any) (Value, error) {
	switch p := param.(type) {
	case Value:
		if p.t != t {
			return Value{}, MixedTypesError{Want: t, Got: p.t}
		}
		return p, nil
	case int:
		return t.Of(int64(p)), nil
	case int8:
		return t.Of(int64(p)), nil
	case int16:
		return t.Of(int64(p)), nil
	case int32:
		return t.Of(int64(p)), nil
	case int64:
		return t.Of(p), nil
	case uint:
		return t.Of(int64(p)), nil
	case uint8:
		return t.Of(int64(p)), nil
	case uint16:
		return t.Of(int64(p)), nil
	case uint32:
		return t.Of(int64(p)), nil
	case uint64:
		return t.Of(int64(p)), nil
	default:
		return Value{}, fmt.Errorf("can't normalize %T to %v", param, t)
	}
}

// Int returns the integer held by v.
func (v Value) Int() int64 {
	return v.v
}

// Type returns the enumeration type v belongs to.
func (v Value) Type() *Type {
	return v.t
}

// Name returns the canonical declared name for the value held by v.
// It returns an UnknownValueError if the value was never declared as
// a member.
func (v Value) Name() (string, error) {
	name, ok := v.t.NameOf(v.v)
	if !ok {
		return "", UnknownValueError{Type: v.t, Value: v.v}
	}
	return name, nil
}

// Bytes returns the encoding of v: exactly v.Type().Size() bytes in
// the host's native byte order, bit-identical to the layout of the
// backing integer type.
func (v Value) Bytes() []byte {
	buf := make([]byte, v.t.storage.Size())
	bin.Put(buf, uint64(v.v))
	return buf
}

// Encode writes the encoding of v to w.
func (v Value) Encode(w io.Writer) error {
	err := bin.Write(w, uint64(v.v), v.t.storage.Size())
	if err != nil {
		return fmt.Errorf("encode %v value: %w", v.t, err)
	}
	return nil
}

func (v Value) String() string {
	name, err := v.Name()
	if err != nil {
		return fmt.Sprintf("<value %v of %v>", v.v, v.t)
	}
	return fmt.Sprintf("<value %v=%v of %v>", name, v.v, v.t)
}
