// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	esl "github.com/Dud3ek/ESL"
)

// Ram returns a single-port block RAM with registered read. At each
// rising clock edge the addressed location is either written from data_i
// (when wr_i is high) or read into data_o; reads have one cycle of
// latency and a write cycle leaves data_o unchanged.
func Ram(clk, wr, addr, dataI, dataO *esl.Signal) *esl.Module {
	m := esl.NewModule("ram")
	m.Input("clk_i", 1, clk)
	m.Input("wr_i", 1, wr)
	m.Input("addr_i", addr.Width(), addr)
	m.Input("data_i", dataI.Width(), dataI)
	m.Output("data_o", dataI.Width(), dataO)
	mem := m.Memory("mem", addr.Width(), dataI.Width())
	m.Seq("logic", clk, esl.Rising, esl.Reads(wr, addr, dataI, mem), esl.Writes(mem, dataO), func() {
		if !wr.Val().IsZero() {
			mem.At(addr.Val()).SetNext(dataI.Val())
		} else {
			dataO.SetNext(mem.At(addr.Val()).Val())
		}
	})
	return m
}

// SimpleRam is Ram with the addressed location always read out, even
// during a write cycle. The read of a location written in the same cycle
// observes the pre-write value.
func SimpleRam(clk, wr, addr, dataI, dataO *esl.Signal) *esl.Module {
	m := esl.NewModule("simpler_ram")
	m.Input("clk_i", 1, clk)
	m.Input("wr_i", 1, wr)
	m.Input("addr_i", addr.Width(), addr)
	m.Input("data_i", dataI.Width(), dataI)
	m.Output("data_o", dataI.Width(), dataO)
	mem := m.Memory("mem", addr.Width(), dataI.Width())
	m.Seq("logic", clk, esl.Rising, esl.Reads(wr, addr, dataI, mem), esl.Writes(mem, dataO), func() {
		if !wr.Val().IsZero() {
			mem.At(addr.Val()).SetNext(dataI.Val())
		}
		dataO.SetNext(mem.At(addr.Val()).Val())
	})
	return m
}

// AsyncRam returns a RAM with clocked writes and continuous read:
// data_o reflects the addressed location combinationally, with no read
// latency, so address changes are visible within the same instant.
func AsyncRam(clk, wr, addr, dataI, dataO *esl.Signal) *esl.Module {
	m := esl.NewModule("async_ram")
	m.Input("clk_i", 1, clk)
	m.Input("wr_i", 1, wr)
	m.Input("addr_i", addr.Width(), addr)
	m.Input("data_i", dataI.Width(), dataI)
	m.Output("data_o", dataI.Width(), dataO)
	mem := m.Memory("mem", addr.Width(), dataI.Width())
	m.Seq("write", clk, esl.Rising, esl.Reads(wr, addr, dataI), esl.Writes(mem), func() {
		if !wr.Val().IsZero() {
			mem.At(addr.Val()).SetNext(dataI.Val())
		}
	})
	m.Comb("read", esl.Reads(addr, mem), esl.Writes(dataO), func() {
		dataO.SetNext(mem.At(addr.Val()).Val())
	})
	return m
}

// DualPortRam returns a RAM with independent write and read address
// buses and registered read. Reading the location written in the same
// cycle observes the pre-write value: the write lands in the next slot
// while the read samples the current one.
func DualPortRam(clk, wr, wrAddr, rdAddr, dataI, dataO *esl.Signal) *esl.Module {
	m := esl.NewModule("dualport_ram")
	m.Input("clk_i", 1, clk)
	m.Input("wr_i", 1, wr)
	m.Input("wr_addr_i", wrAddr.Width(), wrAddr)
	m.Input("rd_addr_i", rdAddr.Width(), rdAddr)
	m.Input("data_i", dataI.Width(), dataI)
	m.Output("data_o", dataI.Width(), dataO)
	mem := m.Memory("mem", wrAddr.Width(), dataI.Width())
	m.Seq("logic", clk, esl.Rising, esl.Reads(wr, wrAddr, rdAddr, dataI, mem), esl.Writes(mem, dataO), func() {
		if !wr.Val().IsZero() {
			mem.At(wrAddr.Val()).SetNext(dataI.Val())
		}
		dataO.SetNext(mem.At(rdAddr.Val()).Val())
	})
	return m
}
