// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import "fmt"

// mustNewPresetChecked builds a named, catalogued Model or panics: the
// eager-validation half of a MustNewPreset-style contract. Its other
// half, never paying for accelerator tables a preset's caller never
// exercises, lives in Model itself (ByteTable/WordTable/CombineTable's
// own sync.Once), so presets need no separate lazy wrapper around a
// pre-built Model/pending-build pair: a *Model[T] already behaves like
// one. check is the catalog's check value (the
// CRC of the nine ASCII bytes "123456789"), transcribed from Greg
// Cook's RevEng catalogue for every preset below so each one is
// independently verifiable without re-deriving it from the algorithm
// parameters.
func mustNewPresetChecked[T UInt](width int, poly, init, xorout T, refin, refout bool, check T, name string) *Model[T] {
	m, err := NewModel(width, poly, init, xorout, refin, refout, check, name)
	if err != nil {
		panic(fmt.Sprintf("crc: invalid preset %s: %v", name, err))
	}
	return m
}

// These presets provide quick access to well documented CRC algorithms.
// Pass one to crcBitwise/crcBytewise/crcWordwise, or wrap it in a Hash
// for streaming use.
//
// Source: https://reveng.sourceforge.io/crc-catalogue/all.htm
var (
	CRC8  = CRC8SMBUS
	CRC16 = CRC16ARC
	CRC32 = CRC32ISOHDLC
	CRC64 = CRC64ECMA182

	CRC32C = CRC32ISCSI
	CRC32D = CRC32BASE91D
	CRC32Q = CRC32AIXM

	A = CRC16ISOIEC144433A
	B = CRC16IBMSDLC

	X25             = CRC16IBMSDLC
	CRC16X25        = CRC16IBMSDLC
	XMODEM          = CRC16XMODEM
	KERMIT          = CRC16KERMIT
	CRC16CCITT      = CRC16KERMIT
	CRC16CCITTFALSE = CRC16IBM3740 // commonly misidentified as CRC-16/CCITT
	CRC16AUGCCITT   = CRC16SPIFUJITSU
	V41LSB          = CRC16KERMIT
	V41MSB          = CRC16XMODEM

	PKZIP      = CRC32ISOHDLC
	V42        = CRC32ISOHDLC
	XZ         = CRC32ISOHDLC
	POSIX      = CRC32CKSUM
	CASTAGNOLI = CRC32ISCSI

	CRC3GSM  = mustNewPresetChecked[uint8](3, 0x3, 0x0, 0x7, false, false, 0x4, "CRC-3/GSM")
	CRC3ROHC = mustNewPresetChecked[uint8](3, 0x3, 0x7, 0x0, true, true, 0x6, "CRC-3/ROHC")

	CRC4INTERLAKEN = mustNewPresetChecked[uint8](4, 0x3, 0xf, 0xf, false, false, 0xb, "CRC-4/INTERLAKEN")
	CRC4G704       = mustNewPresetChecked[uint8](4, 0x3, 0x0, 0x0, true, true, 0x7, "CRC-4/G-704") // Alias: CRC-4/ITU

	CRC5USB     = mustNewPresetChecked[uint8](5, 0x05, 0x1f, 0x1f, true, true, 0x19, "CRC-5/USB")
	CRC5EPCC1G2 = mustNewPresetChecked[uint8](5, 0x09, 0x09, 0x00, false, false, 0x00, "CRC-5/EPC-C1G2") // Alias: CRC-5/EPC
	CRC5G704    = mustNewPresetChecked[uint8](5, 0x15, 0x00, 0x00, true, true, 0x07, "CRC-5/G-704")      // Alias: CRC-5/ITU

	CRC6G704      = mustNewPresetChecked[uint8](6, 0x03, 0x00, 0x00, true, true, 0x06, "CRC-6/G-704") // Alias: CRC-6/ITU
	CRC6CDMA2000B = mustNewPresetChecked[uint8](6, 0x07, 0x3f, 0x00, false, false, 0x3b, "CRC-6/CDMA2000-B")
	CRC6DARC      = mustNewPresetChecked[uint8](6, 0x19, 0x00, 0x00, true, true, 0x26, "CRC-6/DARC")
	CRC6CDMA2000A = mustNewPresetChecked[uint8](6, 0x27, 0x3f, 0x00, false, false, 0x0d, "CRC-6/CDMA2000-A")
	CRC6GSM       = mustNewPresetChecked[uint8](6, 0x2f, 0x00, 0x3f, false, false, 0x13, "CRC-6/GSM")

	CRC7MMC  = mustNewPresetChecked[uint8](7, 0x09, 0x00, 0x00, false, false, 0x75, "CRC-7/MMC") // Alias: CRC-7
	CRC7UMTS = mustNewPresetChecked[uint8](7, 0x45, 0x00, 0x00, false, false, 0x61, "CRC-7/UMTS")
	CRC7ROHC = mustNewPresetChecked[uint8](7, 0x4f, 0x7f, 0x00, true, true, 0x53, "CRC-7/ROHC")

	CRC8SMBUS      = mustNewPresetChecked[uint8](8, 0x07, 0x00, 0x00, false, false, 0xF4, "CRC-8/SMBUS") // Alias: CRC-8
	CRC8I4321      = mustNewPresetChecked[uint8](8, 0x07, 0x00, 0x55, false, false, 0xa1, "CRC-8/I-432-1")
	CRC8ROHC       = mustNewPresetChecked[uint8](8, 0x07, 0xff, 0x00, true, true, 0xd0, "CRC-8/ROHC")
	CRC8GSMA       = mustNewPresetChecked[uint8](8, 0x1d, 0x00, 0x00, false, false, 0x37, "CRC-8/GSM-A")
	CRC8MIFAREMAD  = mustNewPresetChecked[uint8](8, 0x1d, 0xc7, 0x00, false, false, 0x99, "CRC-8/MIFARE-MAD")
	CRC8ICODE      = mustNewPresetChecked[uint8](8, 0x1d, 0xfd, 0x00, false, false, 0x7e, "CRC-8/I-CODE")
	CRC8HITAG      = mustNewPresetChecked[uint8](8, 0x1d, 0xff, 0x00, false, false, 0xb4, "CRC-8/HITAG")
	CRC8SAEJ1850   = mustNewPresetChecked[uint8](8, 0x1d, 0xff, 0xff, false, false, 0x4b, "CRC-8/SAE-J1850")
	CRC8TECH3250   = mustNewPresetChecked[uint8](8, 0x1d, 0xff, 0x00, true, true, 0x97, "CRC-8/TECH-3250") // Alias: CRC-8/AES, CRC-8/EBU
	CRC8OPENSAFETY = mustNewPresetChecked[uint8](8, 0x2f, 0x00, 0x00, false, false, 0x3e, "CRC-8/OPENSAFETY")
	CRC8AUTOSAR    = mustNewPresetChecked[uint8](8, 0x2f, 0xff, 0xff, false, false, 0xdf, "CRC-8/AUTOSAR")
	CRC8NRSC5      = mustNewPresetChecked[uint8](8, 0x31, 0xff, 0x00, false, false, 0xf7, "CRC-8/NRSC-5")
	CRC8MAXIMDOW   = mustNewPresetChecked[uint8](8, 0x31, 0x00, 0x00, true, true, 0xa1, "CRC-8/MAXIM-DOW") // Alias: CRC-8/MAXIM, DOW-CRC
	CRC8DARC       = mustNewPresetChecked[uint8](8, 0x39, 0x00, 0x00, true, true, 0x15, "CRC-8/DARC")
	CRC8GSMB       = mustNewPresetChecked[uint8](8, 0x49, 0x00, 0xff, false, false, 0x94, "CRC-8/GSM-B")
	CRC8LTE        = mustNewPresetChecked[uint8](8, 0x9b, 0x00, 0x00, false, false, 0xea, "CRC-8/LTE")
	CRC8CDMA2000   = mustNewPresetChecked[uint8](8, 0x9b, 0xff, 0x00, false, false, 0xda, "CRC-8/CDMA2000")
	CRC8WCDMA      = mustNewPresetChecked[uint8](8, 0x9b, 0x00, 0x00, true, true, 0x25, "CRC-8/WCDMA")
	CRC8BLUETOOTH  = mustNewPresetChecked[uint8](8, 0xa7, 0x00, 0x00, true, true, 0x26, "CRC-8/BLUETOOTH")
	CRC8DVBS2      = mustNewPresetChecked[uint8](8, 0xd5, 0x00, 0x00, false, false, 0xbc, "CRC-8/DVB-S2")

	CRC10GSM      = mustNewPresetChecked[uint16](10, 0x175, 0x000, 0x3ff, false, false, 0x12a, "CRC-10/GSM")
	CRC10ATM      = mustNewPresetChecked[uint16](10, 0x233, 0x000, 0x000, false, false, 0x199, "CRC-10/ATM") // Alias: CRC-10, CRC-10/I-610
	CRC10CDMA2000 = mustNewPresetChecked[uint16](10, 0x3d9, 0x3ff, 0x000, false, false, 0x233, "CRC-10/CDMA2000")

	CRC11UMTS    = mustNewPresetChecked[uint16](11, 0x307, 0x000, 0x000, false, false, 0x061, "CRC-11/UMTS")
	CRC11FLEXRAY = mustNewPresetChecked[uint16](11, 0x385, 0x01a, 0x000, false, false, 0x5a3, "CRC-11/FLEXRAY")

	CRC12DECT     = mustNewPresetChecked[uint16](12, 0x80f, 0x000, 0x000, false, false, 0xf5b, "CRC-12/DECT") // Alias: X-CRC-12
	CRC12UMTS     = mustNewPresetChecked[uint16](12, 0x80f, 0x000, 0x000, false, true, 0xdaf, "CRC-12/UMTS")  // Alias: CRC-12/3GPP
	CRC12GSM      = mustNewPresetChecked[uint16](12, 0xd31, 0x000, 0xfff, false, false, 0xb34, "CRC-12/GSM")
	CRC12CDMA2000 = mustNewPresetChecked[uint16](12, 0xf13, 0xfff, 0x000, false, false, 0xd4d, "CRC-12/CDMA2000")

	CRC13BBC = mustNewPresetChecked[uint16](13, 0x1cf5, 0x0000, 0x0000, false, false, 0x04fa, "CRC-13/BBC")

	CRC14DARC = mustNewPresetChecked[uint16](14, 0x0805, 0x0000, 0x0000, true, true, 0x082d, "CRC-14/DARC")
	CRC14GSM  = mustNewPresetChecked[uint16](14, 0x202d, 0x0000, 0x3fff, false, false, 0x30ae, "CRC-14/GSM")

	CRC15CAN     = mustNewPresetChecked[uint16](15, 0x4599, 0x0000, 0x0000, false, false, 0x059e, "CRC-15/CAN") // Alias: CRC-15
	CRC15MPT1327 = mustNewPresetChecked[uint16](15, 0x6815, 0x0000, 0x0001, false, false, 0x2566, "CRC-15/MPT1327")

	CRC16DECTX         = mustNewPresetChecked[uint16](16, 0x0589, 0x0000, 0x0000, false, false, 0x007f, "CRC-16/DECT-X") // Alias: X-CRC-16
	CRC16DECTR         = mustNewPresetChecked[uint16](16, 0x0589, 0x0000, 0x0001, false, false, 0x007e, "CRC-16/DECT-R") // Alias: R-CRC-16
	CRC16NRSC5         = mustNewPresetChecked[uint16](16, 0x080b, 0xffff, 0x0000, true, true, 0xa066, "CRC-16/NRSC-5")
	CRC16XMODEM        = mustNewPresetChecked[uint16](16, 0x1021, 0x0000, 0x0000, false, false, 0x31c3, "CRC-16/XMODEM") // Alias: CRC-16/ACORN, CRC-16/LTE, CRC-16/V-41-MSB, XMODEM, ZMODEM
	CRC16GSM           = mustNewPresetChecked[uint16](16, 0x1021, 0x0000, 0xffff, false, false, 0xce3c, "CRC-16/GSM")
	CRC16SPIFUJITSU    = mustNewPresetChecked[uint16](16, 0x1021, 0x1d0f, 0x0000, false, false, 0xe5cc, "CRC-16/SPI-FUJITSU") // Alias: CRC-16/AUG-CCITT
	CRC16IBM3740       = mustNewPresetChecked[uint16](16, 0x1021, 0xffff, 0x0000, false, false, 0x29b1, "CRC-16/IBM-3740")    // Alias: CRC-16/AUTOSAR, CRC-16/CCITT-FALSE
	CRC16GENIBUS       = mustNewPresetChecked[uint16](16, 0x1021, 0xffff, 0xffff, false, false, 0xd64e, "CRC-16/GENIBUS")     // Alias: CRC-16/DARC, CRC-16/EPC, CRC-16/EPC-C1G2, CRC-16/I-CODE
	CRC16KERMIT        = mustNewPresetChecked[uint16](16, 0x1021, 0x0000, 0x0000, true, true, 0x2189, "CRC-16/KERMIT") // Alias: CRC-16/BLUETOOTH, CRC-16/CCITT, CRC-16/CCITT-TRUE, CRC-16/V-41-LSB, CRC-CCITT, KERMIT
	CRC16TMS37157      = mustNewPresetChecked[uint16](16, 0x1021, 0x89ec, 0x0000, true, true, 0x26b1, "CRC-16/TMS37157")
	CRC16RIELLO        = mustNewPresetChecked[uint16](16, 0x1021, 0xb2aa, 0x0000, true, true, 0x63d0, "CRC-16/RIELLO")
	CRC16ISOIEC144433A = mustNewPresetChecked[uint16](16, 0x1021, 0xc6c6, 0x0000, true, true, 0xbf05, "CRC-16/ISO-IEC-14443-3-A") // Alias: CRC-A
	CRC16MCRF4XX       = mustNewPresetChecked[uint16](16, 0x1021, 0xffff, 0x0000, true, true, 0x6f91, "CRC-16/MCRF4XX")
	CRC16IBMSDLC       = mustNewPresetChecked[uint16](16, 0x1021, 0xffff, 0xffff, true, true, 0x906e, "CRC-16/IBM-SDLC") // Alias: CRC-16/ISO-HDLC, CRC-16/ISO-IEC-14443-3-B, CRC-16/X-25, CRC-B, X-25
	CRC16PROFIBUS      = mustNewPresetChecked[uint16](16, 0x1dcf, 0xffff, 0xffff, false, false, 0xa819, "CRC-16/PROFIBUS") // Alias: CRC-16/IEC-61158-2
	CRC16EN13757       = mustNewPresetChecked[uint16](16, 0x3d65, 0x0000, 0xffff, false, false, 0xc2b7, "CRC-16/EN-13757")
	CRC16DNP           = mustNewPresetChecked[uint16](16, 0x3d65, 0x0000, 0xffff, true, true, 0xea82, "CRC-16/DNP")
	CRC16OPENSAFETYA   = mustNewPresetChecked[uint16](16, 0x5935, 0x0000, 0x0000, false, false, 0x5d38, "CRC-16/OPENSAFETY-A")
	CRC16M17           = mustNewPresetChecked[uint16](16, 0x5935, 0xffff, 0x0000, false, false, 0x772b, "CRC-16/M17")
	CRC16LJ1200        = mustNewPresetChecked[uint16](16, 0x6f63, 0x0000, 0x0000, false, false, 0xbdf4, "CRC-16/LJ1200")
	CRC16OPENSAFETYB   = mustNewPresetChecked[uint16](16, 0x755b, 0x0000, 0x0000, false, false, 0x20fe, "CRC-16/OPENSAFETY-B")
	CRC16UMTS          = mustNewPresetChecked[uint16](16, 0x8005, 0x0000, 0x0000, false, false, 0xfee8, "CRC-16/UMTS") // Alias: CRC-16/BUYPASS, CRC-16/VERIFONE
	CRC16DDS110        = mustNewPresetChecked[uint16](16, 0x8005, 0x800d, 0x0000, false, false, 0x9ecf, "CRC-16/DDS-110")
	CRC16CMS           = mustNewPresetChecked[uint16](16, 0x8005, 0xffff, 0x0000, false, false, 0xaee7, "CRC-16/CMS")
	CRC16ARC           = mustNewPresetChecked[uint16](16, 0x8005, 0x0000, 0x0000, true, true, 0xbb3d, "CRC-16/ARC") // Alias: ARC, CRC-16, CRC-16/LHA, CRC-IBM
	CRC16MAXIMDOW      = mustNewPresetChecked[uint16](16, 0x8005, 0x0000, 0xffff, true, true, 0x44c2, "CRC-16/MAXIM-DOW") // Alias: CRC-16/MAXIM
	CRC16MODBUS        = mustNewPresetChecked[uint16](16, 0x8005, 0xffff, 0x0000, true, true, 0x4b37, "CRC-16/MODBUS")    // Alias: MODBUS
	CRC16USB           = mustNewPresetChecked[uint16](16, 0x8005, 0xffff, 0xffff, true, true, 0xb4c8, "CRC-16/USB")
	CRC16T10DIF        = mustNewPresetChecked[uint16](16, 0x8bb7, 0x0000, 0x0000, false, false, 0xd0db, "CRC-16/T10-DIF")
	CRC16TELEDISK      = mustNewPresetChecked[uint16](16, 0xa097, 0x0000, 0x0000, false, false, 0x0fb3, "CRC-16/TELEDISK")
	CRC16CDMA2000      = mustNewPresetChecked[uint16](16, 0xc867, 0xffff, 0x0000, false, false, 0x4c06, "CRC-16/CDMA2000")

	CRC17CANFD = mustNewPresetChecked[uint32](17, 0x1685b, 0x00000, 0x00000, false, false, 0x04f03, "CRC-17/CAN-FD")

	CRC21CANFD = mustNewPresetChecked[uint32](21, 0x102899, 0x000000, 0x000000, false, false, 0x0ed841, "CRC-21/CAN-FD")

	CRC24BLE        = mustNewPresetChecked[uint32](24, 0x00065b, 0x555555, 0x000000, true, true, 0xc25a56, "CRC-24/BLE")
	CRC24INTERLAKEN = mustNewPresetChecked[uint32](24, 0x328b63, 0xffffff, 0xffffff, false, false, 0xb4f3e6, "CRC-24/INTERLAKEN")
	CRC24FLEXRAYB   = mustNewPresetChecked[uint32](24, 0x5d6dcb, 0xabcdef, 0x000000, false, false, 0x1f23b8, "CRC-24/FLEXRAY-B")
	CRC24FLEXRAYA   = mustNewPresetChecked[uint32](24, 0x5d6dcb, 0xfedcba, 0x000000, false, false, 0x7979bd, "CRC-24/FLEXRAY-A")
	CRC24LTEB       = mustNewPresetChecked[uint32](24, 0x800063, 0x000000, 0x000000, false, false, 0x23ef52, "CRC-24/LTE-B")
	CRC24OS9        = mustNewPresetChecked[uint32](24, 0x800063, 0xffffff, 0xffffff, false, false, 0x200fa5, "CRC-24/OS-9")
	CRC24LTEA       = mustNewPresetChecked[uint32](24, 0x864cfb, 0x000000, 0x000000, false, false, 0xcde703, "CRC-24/LTE-A")
	CRC24OPENPGP    = mustNewPresetChecked[uint32](24, 0x864cfb, 0xb704ce, 0x000000, false, false, 0x21cf02, "CRC-24/OPENPGP") // Alias: CRC-24

	CRC30CDMA = mustNewPresetChecked[uint32](30, 0x2030b9c7, 0x3fffffff, 0x3fffffff, false, false, 0x04c34abf, "CRC-30/CDMA")

	CRC31PHILIPS = mustNewPresetChecked[uint32](31, 0x04c11db7, 0x7fffffff, 0x7fffffff, false, false, 0x0ce9e46c, "CRC-31/PHILIPS")

	CRC32XFER     = mustNewPresetChecked[uint32](32, 0x000000af, 0x00000000, 0x00000000, false, false, 0xbd0be338, "CRC-32/XFER")
	CRC32CKSUM    = mustNewPresetChecked[uint32](32, 0x04c11db7, 0x00000000, 0xffffffff, false, false, 0x765e7680, "CRC-32/CKSUM") // Alias: CKSUM, CRC-32/POSIX
	CRC32MPEG2    = mustNewPresetChecked[uint32](32, 0x04c11db7, 0xffffffff, 0x00000000, false, false, 0x0376e6e7, "CRC-32/MPEG-2")
	CRC32BZIP2    = mustNewPresetChecked[uint32](32, 0x04c11db7, 0xffffffff, 0xffffffff, false, false, 0xfc891918, "CRC-32/BZIP2") // Alias: CRC-32/AAL5, CRC-32/DECT-B, B-CRC-32
	CRC32JAMCRC   = mustNewPresetChecked[uint32](32, 0x04c11db7, 0xffffffff, 0x00000000, true, true, 0x340bc6d9, "CRC-32/JAMCRC")  // Alias: JAMCRC
	CRC32ISOHDLC  = mustNewPresetChecked[uint32](32, 0x04c11db7, 0xffffffff, 0xffffffff, true, true, 0xCBF43926, "CRC-32/ISO-HDLC") // Alias: CRC-32, CRC-32/ADCCP, CRC-32/V-42, CRC-32/XZ, PKZIP
	CRC32ISCSI    = mustNewPresetChecked[uint32](32, 0x1edc6f41, 0xffffffff, 0xffffffff, true, true, 0xe3069283, "CRC-32/ISCSI") // Alias: CRC-32/BASE91-C, CRC-32/CASTAGNOLI, CRC-32/INTERLAKEN, CRC-32C
	CRC32MEF      = mustNewPresetChecked[uint32](32, 0x741b8cd7, 0xffffffff, 0x00000000, true, true, 0xd2c22f51, "CRC-32/MEF") // Note: this algorithm uses Koopman's polynomial
	CRC32CDROMEDC = mustNewPresetChecked[uint32](32, 0x8001801b, 0x00000000, 0x00000000, true, true, 0x6ec2edc4, "CRC-32/CD-ROM-EDC")
	CRC32AIXM     = mustNewPresetChecked[uint32](32, 0x814141ab, 0x00000000, 0x00000000, false, false, 0x3010bf7f, "CRC-32/AIXM") // Alias: CRC-32Q
	CRC32BASE91D  = mustNewPresetChecked[uint32](32, 0xa833982b, 0xffffffff, 0xffffffff, true, true, 0x87315576, "CRC-32/BASE91-D") // Alias: CRC-32D
	CRC32AUTOSAR  = mustNewPresetChecked[uint32](32, 0xf4acfb13, 0xffffffff, 0xffffffff, true, true, 0x1697d06a, "CRC-32/AUTOSAR")

	CRC40GSM = mustNewPresetChecked[uint64](40, 0x0004820009, 0x0000000000, 0xffffffffff, false, false, 0xd4164fc646, "CRC-40/GSM")

	CRC64GOISO   = mustNewPresetChecked[uint64](64, 0x000000000000001b, 0xffffffffffffffff, 0xffffffffffffffff, true, true, 0xb90956c775a41001, "CRC-64/GO-ISO")
	CRC64MS      = mustNewPresetChecked[uint64](64, 0x259c84cba6426349, 0xffffffffffffffff, 0x0000000000000000, true, true, 0x75d4b74f024eceea, "CRC-64/MS")
	CRC64ECMA182 = mustNewPresetChecked[uint64](64, 0x42f0e1eba9ea3693, 0x0000000000000000, 0x0000000000000000, false, false, 0x6c40df5f0b497347, "CRC-64/ECMA-182") // Alias: CRC-64
	CRC64WE      = mustNewPresetChecked[uint64](64, 0x42f0e1eba9ea3693, 0xffffffffffffffff, 0xffffffffffffffff, false, false, 0x62ec59e3f1a4f00a, "CRC-64/WE")
	CRC64XZ      = mustNewPresetChecked[uint64](64, 0x42f0e1eba9ea3693, 0xffffffffffffffff, 0xffffffffffffffff, true, true, 0x995DC9BBDF1939FA, "CRC-64/XZ") // Alias: CRC-64/GO-ECMA
	CRC64REDIS   = mustNewPresetChecked[uint64](64, 0xad93d23594c935a9, 0x0000000000000000, 0x0000000000000000, true, true, 0xe9c6d914c4b8d9ca, "CRC-64/REDIS")
)
