package types

import (
	"fmt"
	"math/bits"

	"github.com/wireforge/go-subwire/scale"
)

// Era bounds the validity of a transaction. An immortal era is valid forever;
// a mortal era is valid for Period blocks starting at a phase within the
// current period window.
type Era struct {
	IsMortal bool
	Period   uint64
	Phase    uint64
}

// ImmortalEra returns an era with unlimited validity.
func ImmortalEra() Era {
	return Era{}
}

// NewMortalEra derives a mortal era from a desired validity window and the
// current block number. The period is clamped to a power of two between 4 and
// 65536 and the phase is quantized the same way the runtime quantizes it, so
// the encoded form reproduces the input exactly.
func NewMortalEra(period, current uint64) Era {
	p := nextPowerOfTwo(period)
	if p < 4 {
		p = 4
	}
	if p > 1<<16 {
		p = 1 << 16
	}
	phase := current % p
	q := quantizeFactor(p)
	return Era{
		IsMortal: true,
		Period:   p,
		Phase:    phase / q * q,
	}
}

// String names the era for diagnostics.
func (e Era) String() string {
	if !e.IsMortal {
		return "immortal"
	}
	return fmt.Sprintf("mortal(period=%d, phase=%d)", e.Period, e.Phase)
}

// EncodeScale writes one byte 0x00 for immortal, or the packed two-byte
// little-endian mortal form: the low four bits hold log2(period)-1, the high
// twelve hold the quantized phase.
func (e Era) EncodeScale(w *scale.Writer) error {
	if !e.IsMortal {
		w.U8(0x00)
		return nil
	}
	if e.Period < 4 || e.Period > 1<<16 || e.Period&(e.Period-1) != 0 {
		return fmt.Errorf("%w: mortal era period %d is not a power of two in [4, 65536]", scale.ErrRange, e.Period)
	}
	if e.Phase >= e.Period {
		return fmt.Errorf("%w: mortal era phase %d not below period %d", scale.ErrRange, e.Phase, e.Period)
	}
	q := quantizeFactor(e.Period)
	if e.Phase%q != 0 {
		return fmt.Errorf("%w: mortal era phase %d not aligned to quantize factor %d", scale.ErrRange, e.Phase, q)
	}
	encoded := uint16(bits.TrailingZeros64(e.Period)-1) | uint16(e.Phase/q)<<4
	w.U16(encoded)
	return nil
}

// DecodeScale reads an era. A leading 0x00 byte is immortal; anything else is
// the first of two mortal bytes.
func (e *Era) DecodeScale(r *scale.Reader) error {
	off := r.Position()
	b0, err := r.ReadByte()
	if err != nil {
		return err
	}
	if b0 == 0x00 {
		*e = Era{}
		return nil
	}
	b1, err := r.ReadByte()
	if err != nil {
		return err
	}
	encoded := uint64(b0) | uint64(b1)<<8
	period := uint64(2) << (encoded & 0b1111)
	phase := (encoded >> 4) * quantizeFactor(period)
	if period < 4 || phase >= period {
		return fmt.Errorf("%w: invalid mortal era at offset %d", scale.ErrFormat, off)
	}
	*e = Era{IsMortal: true, Period: period, Phase: phase}
	return nil
}

func quantizeFactor(period uint64) uint64 {
	if q := period >> 12; q > 1 {
		return q
	}
	return 1
}

func nextPowerOfTwo(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	if v&(v-1) == 0 {
		return v
	}
	return 1 << bits.Len64(v)
}
