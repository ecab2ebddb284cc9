package zipstore

import "encoding/binary"

// Record signatures and fixed lengths, per the zip specification
// (4.3 https://pkware.cachefly.net/webdocs/casestudies/APPNOTE.TXT).
// Every multi-byte field in every record is little-endian.
const (
	localFileHeaderSignature  uint32 = 0x04034b50
	centralDirectorySignature uint32 = 0x02014b50
	endOfCentralDirSignature  uint32 = 0x06054b50

	localFileHeaderLen  = 30
	centralDirectoryLen = 46
	endOfCentralDirLen  = 22

	zipVersion20 = 20
	methodStored = 0
)

// appendLocalRecord appends an entry's complete local region: the 30-byte
// local file header, the name bytes, and the raw content.
func appendLocalRecord(buf []byte, e *entry, crc uint32) []byte {
	size := uint32(len(e.content)) // stored: compressed == uncompressed

	buf = binary.LittleEndian.AppendUint32(buf, localFileHeaderSignature)
	buf = binary.LittleEndian.AppendUint16(buf, zipVersion20) // version needed
	buf = binary.LittleEndian.AppendUint16(buf, 0)            // flags
	buf = binary.LittleEndian.AppendUint16(buf, methodStored)
	buf = binary.LittleEndian.AppendUint16(buf, e.dosTime)
	buf = binary.LittleEndian.AppendUint16(buf, e.dosDate)
	buf = binary.LittleEndian.AppendUint32(buf, crc)
	buf = binary.LittleEndian.AppendUint32(buf, size) // compressed size
	buf = binary.LittleEndian.AppendUint32(buf, size) // uncompressed size
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(e.name)))
	buf = binary.LittleEndian.AppendUint16(buf, 0) // extra field length

	buf = append(buf, e.name...)
	buf = append(buf, e.content...)
	return buf
}

// appendCentralRecord appends an entry's 46-byte central directory record
// followed by the name bytes. offset is the byte position of the entry's
// local file header within the archive.
func appendCentralRecord(buf []byte, e *entry, crc uint32, offset uint32) []byte {
	size := uint32(len(e.content))

	buf = binary.LittleEndian.AppendUint32(buf, centralDirectorySignature)
	buf = binary.LittleEndian.AppendUint16(buf, zipVersion20) // version made by
	buf = binary.LittleEndian.AppendUint16(buf, zipVersion20) // version needed
	buf = binary.LittleEndian.AppendUint16(buf, 0)            // flags
	buf = binary.LittleEndian.AppendUint16(buf, methodStored)
	buf = binary.LittleEndian.AppendUint16(buf, e.dosTime)
	buf = binary.LittleEndian.AppendUint16(buf, e.dosDate)
	buf = binary.LittleEndian.AppendUint32(buf, crc)
	buf = binary.LittleEndian.AppendUint32(buf, size) // compressed size
	buf = binary.LittleEndian.AppendUint32(buf, size) // uncompressed size
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(e.name)))
	buf = binary.LittleEndian.AppendUint16(buf, 0) // extra field length
	buf = binary.LittleEndian.AppendUint16(buf, 0) // comment length
	buf = binary.LittleEndian.AppendUint16(buf, 0) // disk number start
	buf = binary.LittleEndian.AppendUint16(buf, 0) // internal attributes
	buf = binary.LittleEndian.AppendUint32(buf, 0) // external attributes
	buf = binary.LittleEndian.AppendUint32(buf, offset)

	buf = append(buf, e.name...)
	return buf
}

// appendEndOfCentralDir appends the fixed 22-byte trailer. Single-volume
// archives only, so both entry counts are equal and both disk fields are 0.
func appendEndOfCentralDir(buf []byte, entryCount uint16, centralDirSize, centralDirOffset uint32) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, endOfCentralDirSignature)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // disk number
	buf = binary.LittleEndian.AppendUint16(buf, 0) // disk with central directory
	buf = binary.LittleEndian.AppendUint16(buf, entryCount)
	buf = binary.LittleEndian.AppendUint16(buf, entryCount)
	buf = binary.LittleEndian.AppendUint32(buf, centralDirSize)
	buf = binary.LittleEndian.AppendUint32(buf, centralDirOffset)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // comment length
	return buf
}
