package crc

// CRC82DARC is the one catalogued CRC wide enough to need Model128.
// Its polynomial and check value are quoted from Greg Cook's RevEng
// catalogue (https://reveng.sourceforge.io/crc-catalogue/all.htm),
// since no width-82 constant appears anywhere in this package's own
// derivation - see DESIGN.md.
var CRC82DARC = func() *Model128 {
	poly := hiLo{hi: 0x0308C, lo: 0x0111011401440411}
	check := hiLo{hi: 0x09EA8, lo: 0x3F625023801FD612}
	m, err := NewModel128(82, poly, hiLo{}, hiLo{}, true, true, check, "CRC-82/DARC")
	if err != nil {
		panic("crc: invalid preset CRC-82/DARC: " + err.Error())
	}
	return m
}()
