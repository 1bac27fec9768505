package lzw

// dictionary is the code table. Entries are stored as a prefix code plus the
// byte appended to it, so an entry is a node in a tree rooted at the literals.
type dictionary struct {
	prefix []uint16
	suffix []byte
	first  []byte
	length []uint32
}

func newDictionary() *dictionary {
	d := &dictionary{
		prefix: make([]uint16, 0, maxEntries),
		suffix: make([]byte, 0, maxEntries),
		first:  make([]byte, 0, maxEntries),
		length: make([]uint32, 0, maxEntries),
	}

	for i := 0; i < 256; i++ {
		d.prefix = append(d.prefix, 0)
		d.suffix = append(d.suffix, byte(i))
		d.first = append(d.first, byte(i))
		d.length = append(d.length, 1)
	}

	// ClearCode stands for no bytes at all.
	d.prefix = append(d.prefix, 0)
	d.suffix = append(d.suffix, 0)
	d.first = append(d.first, 0)
	d.length = append(d.length, 0)

	return d
}

// Reset drops every dynamic entry. The base entries are never overwritten,
// so truncating is enough.
func (d *dictionary) Reset() {
	d.prefix = d.prefix[:FirstCode]
	d.suffix = d.suffix[:FirstCode]
	d.first = d.first[:FirstCode]
	d.length = d.length[:FirstCode]
}

func (d *dictionary) Len() int {
	return len(d.length)
}

func (d *dictionary) Full() bool {
	return len(d.length) >= maxEntries
}

func (d *dictionary) First(code uint32) byte {
	return d.first[code]
}

// Add appends the sequence of prefix followed by b.
func (d *dictionary) Add(prefix uint32, b byte) {
	d.prefix = append(d.prefix, uint16(prefix))
	d.suffix = append(d.suffix, b)
	d.first = append(d.first, d.first[prefix])
	d.length = append(d.length, d.length[prefix]+1)
}

// AppendSequence appends the bytes code stands for to dst, walking the prefix
// chain from the last byte back to the first.
func (d *dictionary) AppendSequence(dst []byte, code uint32) []byte {
	n := int(d.length[code])
	start := len(dst)

	if cap(dst)-start < n {
		grown := make([]byte, start, 2*cap(dst)+n)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:start+n]

	for i := start + n - 1; i >= start; i-- {
		dst[i] = d.suffix[code]
		code = uint32(d.prefix[code])
	}

	return dst
}
