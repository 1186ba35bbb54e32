package lens

import (
	"github.com/cockroachdb/errors"
	"github.com/lens-format/lens-go/internal/encoding"
	"github.com/lens-format/lens-go/types"
)

const (
	defaultMaxDepth = 1024

	// framePoolSize is the number of preallocated frames. Deeper
	// nesting falls back to heap-allocated frames; correctness does
	// not depend on the pool size.
	framePoolSize = 32

	// maxPrealloc caps the capacity hint taken from a container's
	// declared element count, so a forged count cannot force a huge
	// allocation before the elements are actually read.
	maxPrealloc = 256
)

type frameKind uint8

const (
	frameArray frameKind = iota
	frameTuple
	frameSet
	frameObject
)

// frame tracks one partially-constructed container: its kind, the
// number of slots still to fill, the elements or fields gathered so
// far, and the pending key for objects.
type frame struct {
	kind       frameKind
	remaining  uint64
	elems      []types.Value
	set        *types.SetValue
	obj        *types.ObjectValue
	pendingKey string
	hasKey     bool
}

// Decoder reads one or more values from a byte buffer against a fixed
// symbol table. Decoding is iterative: containers are tracked on an
// explicit frame stack, so nesting is bounded by the configured depth
// limit rather than the native stack.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	buf     []byte
	pos     int
	symbols *SymbolTable

	zeroCopy bool
	strict   bool
	maxDepth int
	extHook  ExtHook
	tsHook   TimestampHook

	stack []*frame
	pool  [framePoolSize]frame
}

// NewDecoder returns a Decoder reading from data with the given
// symbol table.
func NewDecoder(data []byte, symbols *SymbolTable, opts ...DecoderOption) *Decoder {
	d := Decoder{
		buf:      data,
		symbols:  symbols,
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return &d
}

// Decode consumes exactly one value from the current position and
// returns it. By default trailing bytes are left unread; with
// WithStrict they cause an ErrTrailingBytes failure. Calling Decode
// again reads the next value.
func (d *Decoder) Decode() (types.Value, error) {
	v, err := d.decodeValue()
	if err != nil {
		d.stack = d.stack[:0]
		return nil, err
	}

	if d.strict && d.pos != len(d.buf) {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes remain after offset %d", len(d.buf)-d.pos, d.pos)
	}

	return v, nil
}

// decodeValue runs the main loop. Each iteration first closes every
// finished frame, innermost first, and then either reads an object key
// or consumes one tagged value.
func (d *Decoder) decodeValue() (types.Value, error) {
	for {
		// close finished containers, innermost first
		for len(d.stack) > 0 && d.top().remaining == 0 {
			v := d.closeFrame()
			if len(d.stack) == 0 {
				return v, nil
			}
			d.install(v)
		}

		if top := d.top(); top != nil && top.kind == frameObject && !top.hasKey {
			if err := d.readKey(top); err != nil {
				return nil, err
			}
			continue
		}

		v, pushed, err := d.readValue()
		if err != nil {
			return nil, err
		}
		if pushed {
			continue
		}

		if len(d.stack) == 0 {
			return v, nil
		}
		d.install(v)
	}
}

func (d *Decoder) top() *frame {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

func (d *Decoder) pushFrame(kind frameKind, count uint64) error {
	depth := len(d.stack)
	if depth >= d.maxDepth {
		return errors.Wrapf(ErrDepthExceeded, "limit %d", d.maxDepth)
	}

	// the stack is LIFO, so slot depth of the pool is always free
	// when a frame is pushed at that depth
	var f *frame
	if depth < framePoolSize {
		f = &d.pool[depth]
		*f = frame{}
	} else {
		f = &frame{}
	}

	f.kind = kind
	f.remaining = count

	switch kind {
	case frameObject:
		f.obj = types.NewObjectValue()
	case frameSet:
		f.set = types.NewSetValue()
	default:
		hint := count
		if hint > maxPrealloc {
			hint = maxPrealloc
		}
		f.elems = make([]types.Value, 0, hint)
	}

	d.stack = append(d.stack, f)
	return nil
}

// closeFrame pops the top frame and promotes it to its final value.
// Tuples are staged as an ordered sequence and finalised here.
func (d *Decoder) closeFrame() types.Value {
	f := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]

	var v types.Value
	switch f.kind {
	case frameArray:
		v = types.NewArrayValue(f.elems)
	case frameTuple:
		v = types.NewTupleValue(f.elems)
	case frameSet:
		v = f.set
	case frameObject:
		v = f.obj
	}

	// the container owns the gathered elements now; drop the frame's
	// references so a pooled frame cannot alias them on reuse
	f.elems = nil
	f.set = nil
	f.obj = nil

	return v
}

func (d *Decoder) install(v types.Value) {
	top := d.top()
	switch top.kind {
	case frameObject:
		top.obj.Set(top.pendingKey, v)
		top.pendingKey = ""
		top.hasKey = false
	case frameSet:
		top.set.Add(v)
	default:
		top.elems = append(top.elems, v)
	}
	top.remaining--
}

// readKey reads the mandatory symbol reference that precedes every
// object entry.
func (d *Decoder) readKey(top *frame) error {
	offset := d.pos

	t, err := d.readByte()
	if err != nil {
		return err
	}
	if t != encoding.SymbolValue {
		return errors.Wrapf(ErrMissingKeyPrefix, "tag %d at offset %d", t, offset)
	}

	idx, err := d.readUvarint()
	if err != nil {
		return err
	}

	name, err := d.symbols.Name(idx)
	if err != nil {
		return errors.Wrapf(err, "object key at offset %d", offset)
	}

	top.pendingKey = name
	top.hasKey = true
	return nil
}

// readValue consumes one tagged value. Scalars are returned directly;
// container tags push a frame and report pushed=true.
func (d *Decoder) readValue() (v types.Value, pushed bool, err error) {
	offset := d.pos

	t, err := d.readByte()
	if err != nil {
		return nil, false, err
	}

	switch t {
	case encoding.NullValue:
		return types.NewNullValue(), false, nil

	case encoding.TrueValue:
		return types.NewBooleanValue(true), false, nil

	case encoding.FalseValue:
		return types.NewBooleanValue(false), false, nil

	case encoding.IntValue:
		x, err := d.readInt()
		if err != nil {
			return nil, false, err
		}
		return types.NewIntegerValue(x), false, nil

	case encoding.FloatValue:
		x, n, err := encoding.DecodeFloat64(d.buf[d.pos:])
		if err != nil {
			return nil, false, errors.Wrapf(err, "float at offset %d", offset)
		}
		d.pos += n
		return types.NewDoubleValue(x), false, nil

	case encoding.TextValue:
		span, err := d.readSpan()
		if err != nil {
			return nil, false, err
		}
		if d.zeroCopy {
			return types.NewTextValue(encoding.UnsafeString(span)), false, nil
		}
		return types.NewTextValue(string(span)), false, nil

	case encoding.SymbolValue:
		idx, err := d.readUvarint()
		if err != nil {
			return nil, false, err
		}
		name, err := d.symbols.Name(idx)
		if err != nil {
			return nil, false, errors.Wrapf(err, "at offset %d", offset)
		}
		return types.NewTextValue(name), false, nil

	case encoding.BlobValue:
		span, err := d.readSpan()
		if err != nil {
			return nil, false, err
		}
		if !d.zeroCopy {
			span = append([]byte(nil), span...)
		}
		return types.NewBlobValue(span), false, nil

	case encoding.TimestampValue:
		ms, err := d.readInt()
		if err != nil {
			return nil, false, err
		}
		if d.tsHook != nil {
			v, err := d.tsHook(ms)
			if err != nil {
				return nil, false, errors.Wrapf(err, "timestamp hook at offset %d", offset)
			}
			return v, false, nil
		}
		return types.NewTimestampValue(encoding.ConvertToTimestamp(ms)), false, nil

	case encoding.ExtValue:
		id, err := d.readUvarint()
		if err != nil {
			return nil, false, err
		}
		span, err := d.readSpan()
		if err != nil {
			return nil, false, err
		}
		if !d.zeroCopy {
			span = append([]byte(nil), span...)
		}
		if d.extHook != nil {
			v, err := d.extHook(id, span)
			if err != nil {
				return nil, false, errors.Wrapf(err, "extension hook at offset %d", offset)
			}
			return v, false, nil
		}
		return types.NewExtensionValue(id, span), false, nil

	case encoding.ArrayValue:
		return nil, true, d.pushContainer(frameArray)

	case encoding.TupleValue:
		return nil, true, d.pushContainer(frameTuple)

	case encoding.SetValue:
		return nil, true, d.pushContainer(frameSet)

	case encoding.ObjectValue:
		return nil, true, d.pushContainer(frameObject)
	}

	return nil, false, errors.Wrapf(ErrUnknownTag, "tag %d at offset %d", t, offset)
}

func (d *Decoder) pushContainer(kind frameKind) error {
	count, err := d.readUvarint()
	if err != nil {
		return err
	}
	return d.pushFrame(kind, count)
}

func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, errors.Wrapf(ErrTruncated, "at offset %d", d.pos)
	}

	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *Decoder) readUvarint() (uint64, error) {
	x, n, err := encoding.DecodeUvarint(d.buf[d.pos:])
	if err != nil {
		return 0, errors.Wrapf(err, "at offset %d", d.pos)
	}

	d.pos += n
	return x, nil
}

func (d *Decoder) readInt() (int64, error) {
	x, n, err := encoding.DecodeInt(d.buf[d.pos:])
	if err != nil {
		return 0, errors.Wrapf(err, "at offset %d", d.pos)
	}

	d.pos += n
	return x, nil
}

func (d *Decoder) readSpan() ([]byte, error) {
	span, n, err := encoding.DecodeSpan(d.buf[d.pos:])
	if err != nil {
		return nil, errors.Wrapf(err, "at offset %d", d.pos)
	}

	d.pos += n
	return span, nil
}
