package archive

import (
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical content-checksum encoding. The digest covers every data table
// except the manifest: rows ordered by primary key, columns in declared
// order, each value tagged with a one-byte type marker. Strings are UTF-8
// NFC with a little-endian uint32 length prefix; scalars are 8-byte
// little-endian. Table boundaries are tagged with the table name so moving
// a row between tables changes the digest.
const (
	tagNull   byte = 'n'
	tagText   byte = 's'
	tagInt    byte = 'i'
	tagReal   byte = 'r'
	tagBlob   byte = 'b'
	tagTable  byte = 'T'
	tagRowEnd byte = 'R'
)

// computeContentChecksum walks the data tables and returns the lowercase
// sha256 hex content digest, exactly as the exporting device computes it.
func computeContentChecksum(db *sql.DB) (string, error) {
	h := sha256.New()
	for _, table := range checksumTables() {
		cols := columnsFor(table)
		if cols == nil {
			return "", fmt.Errorf("checksum: unknown table %q", table)
		}
		if err := hashTable(h, db, table, cols); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashTable(h hash.Hash, db *sql.DB, table string, cols []Column) error {
	h.Write([]byte{tagTable})
	writeString(h, table)

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	// Primary-key order makes the digest independent of insertion order.
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", strings.Join(names, ", "), table)

	rows, err := db.Query(query)
	if err != nil {
		return fmt.Errorf("checksum: read %s: %w", table, err)
	}
	defer rows.Close()

	dest := make([]interface{}, len(cols))
	holders := make([]interface{}, len(cols))
	for i, c := range cols {
		switch c.Kind {
		case KindInt:
			holders[i] = new(sql.NullInt64)
		case KindReal:
			holders[i] = new(sql.NullFloat64)
		case KindBlob:
			holders[i] = new([]byte)
		default:
			holders[i] = new(sql.NullString)
		}
		dest[i] = holders[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("checksum: scan %s: %w", table, err)
		}
		for i, c := range cols {
			switch c.Kind {
			case KindInt:
				v := holders[i].(*sql.NullInt64)
				if !v.Valid {
					h.Write([]byte{tagNull})
					continue
				}
				h.Write([]byte{tagInt})
				writeUint64(h, uint64(v.Int64))
			case KindReal:
				v := holders[i].(*sql.NullFloat64)
				if !v.Valid {
					h.Write([]byte{tagNull})
					continue
				}
				h.Write([]byte{tagReal})
				writeUint64(h, math.Float64bits(v.Float64))
			case KindBlob:
				v := holders[i].(*[]byte)
				if *v == nil {
					h.Write([]byte{tagNull})
					continue
				}
				h.Write([]byte{tagBlob})
				writeLen(h, len(*v))
				h.Write(*v)
			default:
				v := holders[i].(*sql.NullString)
				if !v.Valid {
					h.Write([]byte{tagNull})
					continue
				}
				h.Write([]byte{tagText})
				writeString(h, v.String)
			}
		}
		h.Write([]byte{tagRowEnd})
	}
	return rows.Err()
}

func writeString(h hash.Hash, s string) {
	b := []byte(norm.NFC.String(s))
	writeLen(h, len(b))
	h.Write(b)
}

func writeLen(h hash.Hash, n int) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(n))
	h.Write(buf[:])
}

func writeUint64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}
