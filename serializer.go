package hyphenate

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"io"

	"github.com/go-hyphenate/hyphenate/dat"
)

var magic = [4]byte{'L', 'H', 'Y', 'P'}

const formatVersion byte = 1

// Serialize writes a as a gzip-framed binary stream: a magic header, a
// version byte, the shared transition array, the per-state base table,
// the character map, the alphabet size, and the packed priority table.
func Serialize(w io.Writer, a *Automaton) error {
	gz, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(gz)

	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}
	if err := bw.WriteByte(formatVersion); err != nil {
		return err
	}
	if err := writeUint32(bw, uint32(len(a.data))); err != nil {
		return err
	}
	for _, word := range a.data {
		if err := writeUint32(bw, word); err != nil {
			return err
		}
	}
	if err := writeUint32(bw, uint32(len(a.bases))); err != nil {
		return err
	}
	for _, b := range a.bases {
		if err := writeInt32(bw, b); err != nil {
			return err
		}
	}
	if err := writeCharMap(bw, a.charMap); err != nil {
		return err
	}
	if err := writeUint32(bw, uint32(a.alphabet)); err != nil {
		return err
	}
	if err := writePriorities(bw, a.priorities); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	return gz.Close()
}

// Deserialize reads back an Automaton written by Serialize, validating
// the magic header and version byte.
func Deserialize(r io.Reader) (*Automaton, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	br := bufio.NewReader(gz)

	var got [4]byte
	if _, err := io.ReadFull(br, got[:]); err != nil {
		return nil, err
	}
	if got != magic {
		return nil, &BadMagicError{Got: got}
	}
	version, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, &BadVersionError{Got: version}
	}

	dataLen, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	data := make([]uint32, dataLen)
	for i := range data {
		if data[i], err = readUint32(br); err != nil {
			return nil, err
		}
	}

	basesLen, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	bases := make([]int32, basesLen)
	for i := range bases {
		if bases[i], err = readInt32(br); err != nil {
			return nil, err
		}
	}

	charMap, err := readCharMap(br)
	if err != nil {
		return nil, err
	}

	alphabet, err := readUint32(br)
	if err != nil {
		return nil, err
	}

	priorities, err := readPriorities(br)
	if err != nil {
		return nil, err
	}

	return &Automaton{
		data:       data,
		bases:      bases,
		charMap:    charMap,
		alphabet:   uint16(alphabet),
		priorities: priorities,
	}, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeInt32(w io.Writer, v int32) error {
	return writeUint32(w, uint32(v))
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func readInt32(r io.Reader) (int32, error) {
	v, err := readUint32(r)
	return int32(v), err
}

func writeCharMap(w io.Writer, m *dat.PagedMapBMP) error {
	entries := m.Entries()
	if err := writeUint32(w, uint32(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writeUint32(w, uint32(e.Char)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(e.Dense)); err != nil {
			return err
		}
	}
	return nil
}

func readCharMap(r io.Reader) (*dat.PagedMapBMP, error) {
	count, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	m := &dat.PagedMapBMP{}
	for i := uint32(0); i < count; i++ {
		c, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		d, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		m.Set(uint16(c), uint16(d))
	}
	return m, nil
}

func writePriorities(w io.Writer, s *priorityStore) error {
	if err := writeUint32(w, uint32(s.width)); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(s.length))); err != nil {
		return err
	}
	for pos := range s.length {
		packed, ok := s.Packed(pos)
		if !ok {
			if err := writeUint32(w, 0); err != nil {
				return err
			}
			continue
		}
		if err := writeUint32(w, uint32(len(packed))); err != nil {
			return err
		}
		if _, err := w.Write(packed); err != nil {
			return err
		}
	}
	return nil
}

func readPriorities(r *bufio.Reader) (*priorityStore, error) {
	width, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	s := newPriorityStore(int(width))
	for pos := uint32(0); pos < n; pos++ {
		length, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		if length == 0 {
			continue
		}
		packed := make([]byte, length)
		if _, err := io.ReadFull(r, packed); err != nil {
			return nil, err
		}
		if err := s.PutPacked(int(pos), packed); err != nil {
			return nil, err
		}
	}
	return s, nil
}
