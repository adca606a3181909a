package paramline

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"crc"
)

func TestParseFullLine(t *testing.T) {
	Convey("A fully-specified parameter line", t, func() {
		l, err := Parse(`width=16 poly=0x1021 init=0x0000 refin=false refout=false xorout=0x0000 check=0x31C3 name=CRC-16/XMODEM`)
		So(err, ShouldBeNil)

		Convey("parses every field", func() {
			So(l.Width, ShouldEqual, 16)
			So(l.Poly.Uint64(), ShouldEqual, uint64(0x1021))
			So(l.Init.Uint64(), ShouldEqual, uint64(0))
			So(l.XorOut.Uint64(), ShouldEqual, uint64(0))
			So(l.Check.Uint64(), ShouldEqual, uint64(0x31C3))
			So(l.RefIn, ShouldBeFalse)
			So(l.RefOut, ShouldBeFalse)
			So(l.Name, ShouldEqual, "CRC-16/XMODEM")
		})

		Convey("builds a Model whose Calc matches check", func() {
			model, err := l.Build()
			So(err, ShouldBeNil)
			m, ok := model.(*crc.Model[uint16])
			So(ok, ShouldBeTrue)
			So(crc.Calc(m, []byte("123456789")), ShouldEqual, m.Check)
		})
	})
}

func TestMinimumPrefixNames(t *testing.T) {
	Convey("Minimum unambiguous prefixes resolve to the right field", t, func() {
		l, err := Parse(`w=5 p=0x09 i=0x09 r=false x=0x00 c=0x00 n=CRC-5/EPC-C1G2`)
		So(err, ShouldBeNil)
		So(l.Width, ShouldEqual, 5)
		So(l.RefIn, ShouldBeFalse)
		So(l.RefOut, ShouldBeFalse) // refout copies refin when omitted

		Convey("refo disambiguates refout from refin and residue", func() {
			l2, err := Parse(`w=5 p=0x09 refo=true x=0x00 c=0x00 n=x`)
			So(err, ShouldBeNil)
			So(l2.RefOut, ShouldBeTrue)
			So(l2.RefIn, ShouldBeTrue) // refin copies refout when omitted
		})

		Convey("res is the residue field, not refin/refout", func() {
			l3, err := Parse(`w=5 p=0x09 r=false res=0x03 c=0x00 n=x`)
			So(err, ShouldBeNil)
			So(l3.Residue.Uint64(), ShouldEqual, uint64(3))
		})
	})
}

func TestQuotedName(t *testing.T) {
	Convey("A quoted name may contain whitespace and escaped quotes", t, func() {
		l, err := Parse(`w=8 p=0x07 r=false c=0x00 n="CRC-8 ""special"" variant"`)
		So(err, ShouldBeNil)
		So(l.Name, ShouldEqual, `CRC-8 "special" variant`)
	})
}

func TestIntegerLiteralForms(t *testing.T) {
	Convey("Integer literals parse as decimal, octal, hex, and negative", t, func() {
		Convey("decimal", func() {
			l, err := Parse(`w=8 p=7 i=10 r=false c=0 n=x`)
			So(err, ShouldBeNil)
			So(l.Poly.Uint64(), ShouldEqual, uint64(7))
			So(l.Init.Uint64(), ShouldEqual, uint64(10))
		})
		Convey("octal", func() {
			l, err := Parse(`w=8 p=07 i=012 r=false c=0 n=x`)
			So(err, ShouldBeNil)
			So(l.Poly.Uint64(), ShouldEqual, uint64(7))
			So(l.Init.Uint64(), ShouldEqual, uint64(10)) // 012 octal == 10 decimal
		})
		Convey("hex", func() {
			l, err := Parse(`w=8 p=0x07 i=0xFF r=false c=0 n=x`)
			So(err, ShouldBeNil)
			So(l.Init.Uint64(), ShouldEqual, uint64(0xFF))
		})
		Convey("negative two's-complement form", func() {
			l, err := Parse(`w=8 p=0x07 x=-1 r=false c=0 n=x`)
			So(err, ShouldBeNil)
			So(l.XorOut.Uint64(), ShouldEqual, uint64(0xFF))
		})
	})
}

func TestParseErrors(t *testing.T) {
	Convey("Malformed lines report ErrParse", t, func() {
		Convey("missing '='", func() {
			_, err := Parse(`w=8 poly r=false c=0 n=x`)
			So(err, ShouldNotBeNil)
			So(crc.ErrParse.Error(), ShouldNotBeEmpty)
		})
		Convey("unknown parameter", func() {
			_, err := Parse(`w=8 p=0x07 bogus=1 r=false c=0 n=x`)
			So(err, ShouldNotBeNil)
		})
		Convey("repeated parameter", func() {
			_, err := Parse(`w=8 p=0x07 p=0x09 r=false c=0 n=x`)
			So(err, ShouldNotBeNil)
		})
		Convey("unclosed quote", func() {
			_, err := Parse(`w=8 p=0x07 r=false c=0 n="unterminated`)
			So(err, ShouldNotBeNil)
		})
		Convey("missing required field", func() {
			_, err := Parse(`w=8 r=false c=0 n=x`)
			So(err, ShouldNotBeNil)
		})
		Convey("neither refin nor refout given", func() {
			_, err := Parse(`w=8 p=0x07 c=0 n=x`)
			So(err, ShouldNotBeNil)
		})
		Convey("value overflowing width", func() {
			_, err := Parse(`w=8 p=0x107 r=false c=0 n=x`)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestBuildSelectsNarrowestType(t *testing.T) {
	Convey("Build picks the smallest T that holds width bits", t, func() {
		cases := []struct {
			line string
			want any
		}{
			{`w=5 p=0x05 i=0x1f x=0x1f refin=true refout=true c=0x19 n=x`, (*crc.Model[uint8])(nil)},
			{`w=16 p=0x1021 refin=false refout=false c=0x31C3 n=x`, (*crc.Model[uint16])(nil)},
			{`w=32 p=0x04C11DB7 i=0xFFFFFFFF refin=true refout=true x=0xFFFFFFFF c=0xCBF43926 n=x`, (*crc.Model[uint32])(nil)},
		}
		for _, c := range cases {
			l, err := Parse(c.line)
			So(err, ShouldBeNil)
			model, err := l.Build()
			So(err, ShouldBeNil)
			switch c.want.(type) {
			case *crc.Model[uint8]:
				_, ok := model.(*crc.Model[uint8])
				So(ok, ShouldBeTrue)
			case *crc.Model[uint16]:
				_, ok := model.(*crc.Model[uint16])
				So(ok, ShouldBeTrue)
			case *crc.Model[uint32]:
				_, ok := model.(*crc.Model[uint32])
				So(ok, ShouldBeTrue)
			}
		}
	})
}

func TestBuildWidth82UsesModel128(t *testing.T) {
	Convey("Width beyond 64 builds a Model128", t, func() {
		l, err := Parse(`w=82 p=0x0308C0111011401440411 refin=true refout=true c=0x09EA83F625023801FD612 n=x`)
		So(err, ShouldBeNil)
		model, err := l.Build()
		So(err, ShouldBeNil)
		_, ok := model.(*crc.Model128)
		So(ok, ShouldBeTrue)
	})
}
