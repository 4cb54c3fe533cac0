package ucadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// dataVersion identifies the on-disk layout of a serialized Tables blob.
const dataVersion uint32 = 1

// ErrBadVersion indicates a serialized Tables blob was built with an
// incompatible layout version.
var ErrBadVersion = errors.New("ucadata: unsupported table data version")

// Tables is a self-contained snapshot of every generated table the
// lookup functions in trie.go walk: both tries' stage2/stage1/data arrays,
// the decomposition pool, the collation-element pool, and the contraction
// hash table. A generator (spec.md §9 "Data table generation") builds a
// Tables value by running the same buildTrie/buildContractions pipeline
// over the full UCD/CLDR root and serializes it with WriteTo; at program
// start, Snapshot/Restore let that serialized form replace the bundled
// seed tables without recompiling.
type Tables struct {
	CompStage2 []uint32
	CompStage1 []uint32
	CompData   []CompRecord
	DecompData []uint32

	CeaStage2  []uint32
	CeaStage1  []uint32
	CeaIndices []CEAIndex
	CeaData    []uint16

	Contractions         []Bucket
	ContractionsRootSize int
}

// Snapshot captures the package's current lookup tables.
func Snapshot() Tables {
	return Tables{
		CompStage2:           compStage2,
		CompStage1:           compStage1,
		CompData:             compData,
		DecompData:           DecompData,
		CeaStage2:            ceaStage2,
		CeaStage1:            ceaStage1,
		CeaIndices:           ceaIndices,
		CeaData:              CeaData,
		Contractions:         Contractions,
		ContractionsRootSize: ContractionsRootSize,
	}
}

// Restore installs t as the package's lookup tables, replacing whatever
// was built by init() or a previous Restore. It is not safe to call
// concurrently with lookups (spec.md §5: no internal locking).
func (t Tables) Restore() {
	compStage2, compStage1, compData = t.CompStage2, t.CompStage1, t.CompData
	DecompData = t.DecompData
	ceaStage2, ceaStage1, ceaIndices = t.CeaStage2, t.CeaStage1, t.CeaIndices
	CeaData = t.CeaData
	Contractions = t.Contractions
	ContractionsRootSize = t.ContractionsRootSize
}

func writeUint32Slice(w io.Writer, s []uint32) (int64, error) {
	var n int64
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(s)))
	nn, err := w.Write(hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	buf := make([]byte, 4*len(s))
	for i, v := range s {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	nn, err = w.Write(buf)
	n += int64(nn)
	return n, err
}

func readUint32Slice(r io.Reader) ([]uint32, int64, error) {
	var n int64
	var hdr [4]byte
	nn, err := io.ReadFull(r, hdr[:])
	n += int64(nn)
	if err != nil {
		return nil, n, err
	}
	count := binary.LittleEndian.Uint32(hdr[:])
	buf := make([]byte, 4*count)
	nn, err = io.ReadFull(r, buf)
	n += int64(nn)
	if err != nil {
		return nil, n, err
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out, n, nil
}

func writeUint16Slice(w io.Writer, s []uint16) (int64, error) {
	var n int64
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(s)))
	nn, err := w.Write(hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	buf := make([]byte, 2*len(s))
	for i, v := range s {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	nn, err = w.Write(buf)
	n += int64(nn)
	return n, err
}

func readUint16Slice(r io.Reader) ([]uint16, int64, error) {
	var n int64
	var hdr [4]byte
	nn, err := io.ReadFull(r, hdr[:])
	n += int64(nn)
	if err != nil {
		return nil, n, err
	}
	count := binary.LittleEndian.Uint32(hdr[:])
	buf := make([]byte, 2*count)
	nn, err = io.ReadFull(r, buf)
	n += int64(nn)
	if err != nil {
		return nil, n, err
	}
	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	return out, n, nil
}

// WriteTo serializes t using a flat little-endian layout: a version word,
// followed by each table as a uint32 length prefix and its packed
// elements, in field declaration order.
func (t Tables) WriteTo(w io.Writer) (int64, error) {
	var n int64
	var verBuf [4]byte
	binary.LittleEndian.PutUint32(verBuf[:], dataVersion)
	nn, err := w.Write(verBuf[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	write := func(wr func() (int64, error)) bool {
		m, e := wr()
		n += m
		if e != nil {
			err = e
			return false
		}
		return true
	}

	if !write(func() (int64, error) { return writeUint32Slice(w, t.CompStage2) }) {
		return n, err
	}
	if !write(func() (int64, error) { return writeUint32Slice(w, t.CompStage1) }) {
		return n, err
	}
	if !write(func() (int64, error) {
		packed := make([]uint32, len(t.CompData))
		for i, r := range t.CompData {
			packed[i] = uint32(r.CCC) | uint32(r.DecompLen)<<8 | uint32(r.DecompIdx)<<16
		}
		return writeUint32Slice(w, packed)
	}) {
		return n, err
	}
	if !write(func() (int64, error) { return writeUint32Slice(w, t.DecompData) }) {
		return n, err
	}
	if !write(func() (int64, error) { return writeUint32Slice(w, t.CeaStage2) }) {
		return n, err
	}
	if !write(func() (int64, error) { return writeUint32Slice(w, t.CeaStage1) }) {
		return n, err
	}
	if !write(func() (int64, error) {
		packed := make([]uint32, len(t.CeaIndices))
		for i, idx := range t.CeaIndices {
			packed[i] = uint32(idx)
		}
		return writeUint32Slice(w, packed)
	}) {
		return n, err
	}
	if !write(func() (int64, error) { return writeUint16Slice(w, t.CeaData) }) {
		return n, err
	}
	if !write(func() (int64, error) {
		buf := make([]byte, 0, 16*len(t.Contractions)+4)
		var hdr [4]byte
		binary.LittleEndian.PutUint32(hdr[:], uint32(len(t.Contractions)))
		buf = append(buf, hdr[:]...)
		var rec [16]byte
		for _, b := range t.Contractions {
			binary.LittleEndian.PutUint32(rec[0:], b.Key)
			binary.LittleEndian.PutUint16(rec[4:], uint16(b.NextOffset))
			binary.LittleEndian.PutUint16(rec[6:], b.ContCount)
			binary.LittleEndian.PutUint32(rec[8:], b.ContIdx)
			binary.LittleEndian.PutUint32(rec[12:], b.Value)
			buf = append(buf, rec[:]...)
		}
		nn, err := w.Write(buf)
		return int64(nn), err
	}) {
		return n, err
	}

	var rootSizeBuf [4]byte
	binary.LittleEndian.PutUint32(rootSizeBuf[:], uint32(t.ContractionsRootSize))
	nn, err = w.Write(rootSizeBuf[:])
	n += int64(nn)
	return n, err
}

// ReadFrom deserializes a Tables value written by WriteTo.
func (t *Tables) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	var verBuf [4]byte
	nn, err := io.ReadFull(r, verBuf[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	if binary.LittleEndian.Uint32(verBuf[:]) != dataVersion {
		return n, ErrBadVersion
	}

	read := func(fn func() (int64, error)) bool {
		m, e := fn()
		n += m
		if e != nil {
			err = e
			return false
		}
		return true
	}

	if !read(func() (int64, error) {
		v, m, e := readUint32Slice(r)
		t.CompStage2 = v
		return m, e
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		v, m, e := readUint32Slice(r)
		t.CompStage1 = v
		return m, e
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		packed, m, e := readUint32Slice(r)
		if e != nil {
			return m, e
		}
		t.CompData = make([]CompRecord, len(packed))
		for i, v := range packed {
			t.CompData[i] = CompRecord{
				CCC:       uint8(v),
				DecompLen: uint8(v >> 8),
				DecompIdx: uint16(v >> 16),
			}
		}
		return m, nil
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		v, m, e := readUint32Slice(r)
		t.DecompData = v
		return m, e
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		v, m, e := readUint32Slice(r)
		t.CeaStage2 = v
		return m, e
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		v, m, e := readUint32Slice(r)
		t.CeaStage1 = v
		return m, e
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		packed, m, e := readUint32Slice(r)
		if e != nil {
			return m, e
		}
		t.CeaIndices = make([]CEAIndex, len(packed))
		for i, v := range packed {
			t.CeaIndices[i] = CEAIndex(v)
		}
		return m, nil
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		v, m, e := readUint16Slice(r)
		t.CeaData = v
		return m, e
	}) {
		return n, err
	}
	if !read(func() (int64, error) {
		var hdr [4]byte
		m, e := io.ReadFull(r, hdr[:])
		if e != nil {
			return int64(m), e
		}
		count := binary.LittleEndian.Uint32(hdr[:])
		buf := make([]byte, 16*count)
		mm, e := io.ReadFull(r, buf)
		total := int64(m) + int64(mm)
		if e != nil {
			return total, e
		}
		t.Contractions = make([]Bucket, count)
		for i := range t.Contractions {
			rec := buf[i*16:]
			t.Contractions[i] = Bucket{
				Key:        binary.LittleEndian.Uint32(rec[0:]),
				NextOffset: int16(binary.LittleEndian.Uint16(rec[4:])),
				ContCount:  binary.LittleEndian.Uint16(rec[6:]),
				ContIdx:    binary.LittleEndian.Uint32(rec[8:]),
				Value:      binary.LittleEndian.Uint32(rec[12:]),
			}
		}
		return total, nil
	}) {
		return n, err
	}

	var rootSizeBuf [4]byte
	nn, err = io.ReadFull(r, rootSizeBuf[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	t.ContractionsRootSize = int(binary.LittleEndian.Uint32(rootSizeBuf[:]))
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t Tables) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Tables) UnmarshalBinary(data []byte) error {
	_, err := t.ReadFrom(bytes.NewReader(data))
	return err
}
