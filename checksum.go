package zipstore

// Reflected CRC-32, polynomial 0xEDB88320 — the variant ZIP readers verify
// entry content against. Built from scratch so the serializer has no
// dependency on a compression library; tests pin it to hash/crc32.
const crcPolynomial = 0xEDB88320

var crcTable = makeCRCTable()

func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for n := range table {
		c := uint32(n)
		for i := 0; i < 8; i++ {
			if c&1 == 1 {
				c = crcPolynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[n] = c
	}
	return table
}

// Checksum returns the CRC-32 of p.
func Checksum(p []byte) uint32 {
	acc := uint32(0xFFFFFFFF)
	for _, b := range p {
		acc = (acc >> 8) ^ crcTable[(acc^uint32(b))&0xFF]
	}
	return ^acc
}
