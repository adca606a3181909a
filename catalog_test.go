package crc

import "testing"

// wordSizesFor returns the word sizes worth exercising crcWordwise with
// for a given model width: both 32- and 64-bit words below 33 bits,
// only 64-bit words above that (a 32-bit word can't hold a width>32
// register, see wordwise.go's top computation).
func wordSizesFor(width int) []int {
	if width <= 32 {
		return []int{4, 8}
	}
	return []int{8}
}

// testModel drives every evaluation strategy this package offers for m
// over the catalog's standard check string and cross-checks the
// results against each other and against m.Check/m.Res, per spec.md
// §8's end-to-end conformance rules.
func testModel[T UInt](t *testing.T, m *Model[T]) {
	t.Helper()
	msg := []byte("123456789")

	if got := crcBitwise(m, m.Init, msg); got != m.Check {
		t.Errorf("%s: crcBitwise = %#x, want %#x", m.Name, got, m.Check)
	}
	if got := crcBytewise(m, m.Init, msg); got != m.Check {
		t.Errorf("%s: crcBytewise = %#x, want %#x", m.Name, got, m.Check)
	}
	for _, wb := range wordSizesFor(m.Width) {
		for _, little := range []bool{true, false} {
			if got := crcWordwise(m, m.Init, msg, wb, little); got != m.Check {
				t.Errorf("%s: crcWordwise(wordBytes=%d, little=%v) = %#x, want %#x", m.Name, wb, little, got, m.Check)
			}
		}
	}

	if got := crcZeros(m, 0, uint64(m.Width)) ^ m.XorOut; got != m.Res {
		t.Errorf("%s: residue = %#x, want %#x", m.Name, got, m.Res)
	}

	crc1 := crcBytewise(m, m.Init, []byte("12345"))
	crc2 := crcBytewise(m, m.Init, []byte("6789"))
	if got := CrcCombine(m, crc1, crc2, 4); got != m.Check {
		t.Errorf("%s: CrcCombine(12345, 6789) = %#x, want %#x", m.Name, got, m.Check)
	}

	h := NewHash(m)
	h.Write(msg)
	if got := h.SumT(); got != m.Check {
		t.Errorf("%s: Hash.SumT = %#x, want %#x", m.Name, got, m.Check)
	}
}

var presetsuint8 = []*Model[uint8]{
	CRC3GSM,
	CRC3ROHC,
	CRC4INTERLAKEN,
	CRC4G704,
	CRC5USB,
	CRC5EPCC1G2,
	CRC5G704,
	CRC6G704,
	CRC6CDMA2000B,
	CRC6DARC,
	CRC6CDMA2000A,
	CRC6GSM,
	CRC7MMC,
	CRC7UMTS,
	CRC7ROHC,
	CRC8SMBUS,
	CRC8I4321,
	CRC8ROHC,
	CRC8GSMA,
	CRC8MIFAREMAD,
	CRC8ICODE,
	CRC8HITAG,
	CRC8SAEJ1850,
	CRC8TECH3250,
	CRC8OPENSAFETY,
	CRC8AUTOSAR,
	CRC8NRSC5,
	CRC8MAXIMDOW,
	CRC8DARC,
	CRC8GSMB,
	CRC8LTE,
	CRC8CDMA2000,
	CRC8WCDMA,
	CRC8BLUETOOTH,
	CRC8DVBS2,
}

var presetsuint16 = []*Model[uint16]{
	CRC10GSM,
	CRC10ATM,
	CRC10CDMA2000,
	CRC11UMTS,
	CRC11FLEXRAY,
	CRC12DECT,
	CRC12UMTS,
	CRC12GSM,
	CRC12CDMA2000,
	CRC13BBC,
	CRC14DARC,
	CRC14GSM,
	CRC15CAN,
	CRC15MPT1327,
	CRC16DECTX,
	CRC16DECTR,
	CRC16NRSC5,
	CRC16XMODEM,
	CRC16GSM,
	CRC16SPIFUJITSU,
	CRC16IBM3740,
	CRC16GENIBUS,
	CRC16KERMIT,
	CRC16TMS37157,
	CRC16RIELLO,
	CRC16ISOIEC144433A,
	CRC16MCRF4XX,
	CRC16IBMSDLC,
	CRC16PROFIBUS,
	CRC16EN13757,
	CRC16DNP,
	CRC16OPENSAFETYA,
	CRC16M17,
	CRC16LJ1200,
	CRC16OPENSAFETYB,
	CRC16UMTS,
	CRC16DDS110,
	CRC16CMS,
	CRC16ARC,
	CRC16MAXIMDOW,
	CRC16MODBUS,
	CRC16USB,
	CRC16T10DIF,
	CRC16TELEDISK,
	CRC16CDMA2000,
}

var presetsuint32 = []*Model[uint32]{
	CRC17CANFD,
	CRC21CANFD,
	CRC24BLE,
	CRC24INTERLAKEN,
	CRC24FLEXRAYB,
	CRC24FLEXRAYA,
	CRC24LTEB,
	CRC24OS9,
	CRC24LTEA,
	CRC24OPENPGP,
	CRC30CDMA,
	CRC31PHILIPS,
	CRC32XFER,
	CRC32CKSUM,
	CRC32MPEG2,
	CRC32BZIP2,
	CRC32JAMCRC,
	CRC32ISOHDLC,
	CRC32ISCSI,
	CRC32MEF,
	CRC32CDROMEDC,
	CRC32AIXM,
	CRC32BASE91D,
	CRC32AUTOSAR,
}

var presetsuint64 = []*Model[uint64]{
	CRC40GSM,
	CRC64GOISO,
	CRC64MS,
	CRC64ECMA182,
	CRC64WE,
	CRC64XZ,
	CRC64REDIS,
}

func TestPresetsUint8(t *testing.T) {
	for _, m := range presetsuint8 {
		t.Run(m.Name, func(t *testing.T) { testModel(t, m) })
	}
}

func TestPresetsUint16(t *testing.T) {
	for _, m := range presetsuint16 {
		t.Run(m.Name, func(t *testing.T) { testModel(t, m) })
	}
}

func TestPresetsUint32(t *testing.T) {
	for _, m := range presetsuint32 {
		t.Run(m.Name, func(t *testing.T) { testModel(t, m) })
	}
}

func TestPresetsUint64(t *testing.T) {
	for _, m := range presetsuint64 {
		t.Run(m.Name, func(t *testing.T) { testModel(t, m) })
	}
}

// TestCRC82DARC exercises the one catalogued preset wide enough to need
// Model128 - the same check/residue/combine properties as testModel,
// but over the hiLo evaluators since CRC82DARC doesn't fit a uint64
// register.
func TestCRC82DARC(t *testing.T) {
	m := CRC82DARC
	msg := []byte("123456789")

	if got := crcBitwiseDbl(m, m.Init, msg); got != m.Check {
		t.Errorf("crcBitwiseDbl = %#v, want %#v", got, m.Check)
	}
	if got := crcBytewiseDbl(m, m.Init, msg); got != m.Check {
		t.Errorf("crcBytewiseDbl = %#v, want %#v", got, m.Check)
	}

	if got := crcZerosDbl(m, hiLo{}, uint64(m.Width)).xor(m.XorOut); got != m.Res {
		t.Errorf("residue = %#v, want %#v", got, m.Res)
	}

	crc1 := crcBytewiseDbl(m, m.Init, []byte("12345"))
	crc2 := crcBytewiseDbl(m, m.Init, []byte("6789"))
	if got := CrcCombineDbl(m, crc1, crc2, 4); got != m.Check {
		t.Errorf("CrcCombineDbl(12345, 6789) = %#v, want %#v", got, m.Check)
	}
}

// TestAliases checks that the short catalog names resolve to the
// presets they're documented to alias, catching a typo in preset.go's
// alias block that the compiler can't.
func TestAliases(t *testing.T) {
	cases := []struct {
		name  string
		alias *Model[uint32]
		want  *Model[uint32]
	}{
		{"CRC32", CRC32, CRC32ISOHDLC},
		{"CRC32C", CRC32C, CRC32ISCSI},
		{"CRC32D", CRC32D, CRC32BASE91D},
		{"CRC32Q", CRC32Q, CRC32AIXM},
	}
	for _, c := range cases {
		if c.alias != c.want {
			t.Errorf("%s does not alias the expected preset", c.name)
		}
	}

	if CRC8 != CRC8SMBUS {
		t.Error("CRC8 does not alias CRC8SMBUS")
	}
	if CRC16 != CRC16ARC {
		t.Error("CRC16 does not alias CRC16ARC")
	}
	if CRC64 != CRC64ECMA182 {
		t.Error("CRC64 does not alias CRC64ECMA182")
	}
	if X25 != CRC16IBMSDLC || CRC16X25 != CRC16IBMSDLC {
		t.Error("X25/CRC16X25 do not alias CRC16IBMSDLC")
	}
	if KERMIT != CRC16KERMIT || CRC16CCITT != CRC16KERMIT {
		t.Error("KERMIT/CRC16CCITT do not alias CRC16KERMIT")
	}
}
