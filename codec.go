package densearena

import (
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		MaxArrayElements: math.MaxInt32,
		MaxMapPairs:      math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

var (
	_ cbor.Marshaler   = (*Arena[Ref[struct{}], struct{}])(nil)
	_ cbor.Unmarshaler = (*Arena[Ref[struct{}], struct{}])(nil)
)

// MarshalCBOR encodes the stored values as a CBOR array in key order. Keys
// held inside values are plain integers, so they resolve unchanged against
// the decoded arena.
func (a *Arena[K, V]) MarshalCBOR() ([]byte, error) {
	elems := a.elems
	if elems == nil {
		elems = []V{}
	}
	data, err := encMode.Marshal(elems)
	if err != nil {
		return nil, errors.Wrap(err, "densearena: encode values")
	}
	return data, nil
}

// UnmarshalCBOR replaces the arena's contents with the decoded values. On
// error the arena is left as it was.
func (a *Arena[K, V]) UnmarshalCBOR(data []byte) error {
	var elems []V
	if err := decMode.Unmarshal(data, &elems); err != nil {
		return errors.Wrap(err, "densearena: decode values")
	}
	if n := len(elems); n > 0 {
		if err := checkKeySpace[K](n - 1); err != nil {
			return err
		}
	}
	a.elems = elems
	return nil
}

// checkKeySpace converts a key capacity fault into an error; decoded input
// is untrusted, so an oversized array is not a programming error.
func checkKeySpace[K EntityRef[K]](i int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("densearena: decoded %d values exceed key space: %v", i+1, r)
		}
	}()
	var k K
	k.FromIndex(i)
	return nil
}
