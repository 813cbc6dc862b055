// Copyright 2015 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package mysql

// MySQL type informations.
const (
	TypeDecimal   byte = 0
	TypeTiny      byte = 1
	TypeShort     byte = 2
	TypeLong      byte = 3
	TypeFloat     byte = 4
	TypeDouble    byte = 5
	TypeNull      byte = 6
	TypeTimestamp byte = 7
	TypeLonglong  byte = 8
	TypeInt24     byte = 9
	TypeDate      byte = 10
	/* Original name was TypeTime, renamed to Duration to resolve the conflict with Go type Time.*/
	TypeDuration   byte = 11
	TypeDatetime   byte = 12
	TypeYear       byte = 13
	TypeNewDate    byte = 14
	TypeVarchar    byte = 15
	TypeBit        byte = 16
	TypeJSON       byte = 0xf5
	TypeNewDecimal byte = 0xf6
	TypeEnum       byte = 0xf7
	TypeSet        byte = 0xf8
	TypeTinyBlob   byte = 0xf9
	TypeMediumBlob byte = 0xfa
	TypeLongBlob   byte = 0xfb
	TypeBlob       byte = 0xfc
	TypeVarString  byte = 0xfd
	TypeString     byte = 0xfe
	TypeGeometry   byte = 0xff
)

var RefTypeName = map[byte]string{
	0:    "DECIMAL",
	1:    "TINY",
	2:    "SHORT",
	3:    "LONG",
	4:    "FLOAT",
	5:    "DOUBLE",
	6:    "NULL",
	7:    "TIMESTAMP",
	8:    "LONGLONG",
	9:    "INT24",
	10:   "DATE",
	11:   "TIME",
	12:   "DATETIME",
	13:   "YEAR",
	14:   "NEWDATE",
	15:   "VARCHAR",
	16:   "BIT",
	0xF5: "JSON",
	0xF6: "NEWDECIMAL",
	0xF7: "ENUM",
	0xF8: "SET",
	0xF9: "TINYBLOB",
	0xFA: "MEDIUMBLOB",
	0xFB: "LONGBLOB",
	0xFC: "BLOB",
	0xFD: "VARSTRING",
	0xFE: "STRING",
	0xFF: "GEOMETRY",
}

// Flag informations.
const (
	NotNullFlag     uint = 1   /* Field can't be NULL */
	PriKeyFlag      uint = 2   /* Field is part of a primary key */
	UniqueKeyFlag   uint = 4   /* Field is part of a unique key */
	MultipleKeyFlag uint = 8   /* Field is part of a key */
	BlobFlag        uint = 16  /* Field is a blob */
	UnsignedFlag    uint = 32  /* Field is unsigned */
	ZerofillFlag    uint = 64  /* Field is zerofill */
	BinaryFlag      uint = 128 /* Field is binary   */

	EnumFlag          uint = 256  /* Field is an enum */
	AutoIncrementFlag uint = 512  /* Field is an auto increment field */
	TimestampFlag     uint = 1024 /* Field is a timestamp */
	SetFlag           uint = 2048 /* Field is a set */
	NumFlag           uint = 32768
)

// HasUnsignedFlag checks if UnsignedFlag is set.
func HasUnsignedFlag(flag uint) bool {
	return (flag & UnsignedFlag) > 0
}

// HasBinaryFlag checks if BinaryFlag is set.
func HasBinaryFlag(flag uint) bool {
	return (flag & BinaryFlag) > 0
}

// HasBlobFlag checks if BlobFlag is set.
func HasBlobFlag(flag uint) bool {
	return (flag & BlobFlag) > 0
}
