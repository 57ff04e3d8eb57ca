package chip8

// execute applies a single decoded instruction to the machine state.
// The program counter has already been advanced past the instruction,
// control flow instructions overwrite it. Returned errors carry no
// address context, Step wraps them.
func (c *CPU) execute(in Instruction) error {
	switch in.Op {
	case OpSys:
		// Machine code routine of the original interpreter host,
		// ignored like on every modern interpreter.

	case OpScrollDown:
		c.display.ScrollDown(int(in.N))

	case OpScrollRight:
		c.display.ScrollRight()

	case OpScrollLeft:
		c.display.ScrollLeft()

	case OpExit:
		c.state = StateHalted

	case OpLowRes:
		c.display.SetHighRes(false)

	case OpHighRes:
		c.display.SetHighRes(true)

	case OpClearScreen:
		c.display.Clear()

	case OpReturn:
		addr, err := c.regs.Pop()
		if err != nil {
			return err
		}
		c.regs.SetPC(addr)

	case OpJump:
		c.regs.SetPC(in.Addr)

	case OpCall:
		if err := c.regs.Push(c.regs.PC()); err != nil {
			return err
		}
		c.regs.SetPC(in.Addr)

	case OpSkipEqualByte:
		c.skipIf(c.regs.V[in.X] == in.B)

	case OpSkipNotEqualByte:
		c.skipIf(c.regs.V[in.X] != in.B)

	case OpSkipEqual:
		c.skipIf(c.regs.V[in.X] == c.regs.V[in.Y])

	case OpSkipNotEqual:
		c.skipIf(c.regs.V[in.X] != c.regs.V[in.Y])

	case OpLoadByte:
		c.regs.V[in.X] = in.B

	case OpAddByte:
		c.regs.V[in.X] += in.B

	case OpLoad:
		c.regs.V[in.X] = c.regs.V[in.Y]

	case OpOr:
		c.regs.V[in.X] |= c.regs.V[in.Y]

	case OpAnd:
		c.regs.V[in.X] &= c.regs.V[in.Y]

	case OpXor:
		c.regs.V[in.X] ^= c.regs.V[in.Y]

	case OpAdd:
		sum := uint16(c.regs.V[in.X]) + uint16(c.regs.V[in.Y])
		c.regs.V[in.X] = uint8(sum)
		c.setFlag(sum > 0xFF)

	case OpSub:
		vx, vy := c.regs.V[in.X], c.regs.V[in.Y]
		c.regs.V[in.X] = vx - vy
		c.setFlag(vx >= vy)

	case OpSubN:
		vx, vy := c.regs.V[in.X], c.regs.V[in.Y]
		c.regs.V[in.X] = vy - vx
		c.setFlag(vy >= vx)

	case OpShiftRight:
		vx := c.regs.V[in.X]
		c.regs.V[in.X] = vx >> 1
		c.setFlag(vx&0x01 != 0)

	case OpShiftLeft:
		vx := c.regs.V[in.X]
		c.regs.V[in.X] = vx << 1
		c.setFlag(vx&0x80 != 0)

	case OpLoadI:
		c.regs.SetI(in.Addr)

	case OpJumpV0:
		c.regs.SetPC(in.Addr + Address(c.regs.V[0]))

	case OpRandom:
		c.regs.V[in.X] = byte(c.rand.IntN(256)) & in.B

	case OpDraw:
		return c.draw(in)

	case OpSkipKeyPressed:
		c.skipIf(c.keypad.IsDown(c.regs.V[in.X] & 0x0F))

	case OpSkipKeyNotPressed:
		c.skipIf(!c.keypad.IsDown(c.regs.V[in.X] & 0x0F))

	case OpLoadDelay:
		c.regs.V[in.X] = c.regs.DT

	case OpWaitKey:
		c.state = StateAwaitingKey
		c.waitReg = in.X

	case OpSetDelay:
		c.regs.DT = c.regs.V[in.X]

	case OpSetSound:
		c.regs.ST = c.regs.V[in.X]

	case OpAddI:
		c.regs.SetI(c.regs.I() + Address(c.regs.V[in.X]))

	case OpLoadSprite:
		c.regs.SetI(FontAddress(c.regs.V[in.X]))

	case OpStoreBCD:
		return c.storeBCD(c.regs.V[in.X])

	case OpStoreRegisters:
		return c.storeRegisters(in.X)

	case OpLoadRegisters:
		return c.loadRegisters(in.X)

	default:
		return DecodeError{Opcode: Encode(in)}
	}
	return nil
}

// skipIf advances the program counter past the next instruction if the
// condition holds.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.regs.AdvancePC()
	}
}

// setFlag writes the flag register. Flags are written after the result
// register, an instruction with VF as destination keeps the flag.
func (c *CPU) setFlag(condition bool) {
	if condition {
		c.regs.V[VF] = 1
	} else {
		c.regs.V[VF] = 0
	}
}

// draw renders a sprite from memory at I to the display position named
// by the instruction's registers. Pixels composite with exclusive or,
// VF is set to 1 if any lit pixel was cleared. The start position wraps
// into the active resolution, as do sprite pixels crossing an edge.
//
// A height of 0 draws the Super-CHIP large sprite: 16 rows that are 16
// pixels wide in high resolution mode and 8 pixels wide otherwise.
func (c *CPU) draw(in Instruction) error {
	width, height := c.display.Resolution()
	x0 := int(c.regs.V[in.X]) % width
	y0 := int(c.regs.V[in.Y]) % height

	rows := int(in.N)
	wide := false
	if rows == 0 {
		rows = 16
		wide = c.display.HighRes()
	}

	base := c.regs.I()
	collision := false

	for row := range rows {
		var bits uint16
		var spriteWidth int

		if wide {
			hi, err := c.mem.Read(base + Address(2*row))
			if err != nil {
				return err
			}
			lo, err := c.mem.Read(base + Address(2*row+1))
			if err != nil {
				return err
			}
			bits = uint16(hi)<<8 | uint16(lo)
			spriteWidth = 16
		} else {
			b, err := c.mem.Read(base + Address(row))
			if err != nil {
				return err
			}
			bits = uint16(b)
			spriteWidth = 8
		}

		for col := range spriteWidth {
			if bits&(1<<(spriteWidth-1-col)) == 0 {
				continue
			}
			if c.display.SetPixel((x0+col)%width, (y0+row)%height) {
				collision = true
			}
		}
	}

	c.setFlag(collision)
	return nil
}

// storeBCD writes the decimal digits of the value to memory at I, the
// hundreds first.
func (c *CPU) storeBCD(value uint8) error {
	base := c.regs.I()
	digits := [3]byte{value / 100, value / 10 % 10, value % 10}

	for i, digit := range digits {
		if err := c.mem.Write(base+Address(i), digit); err != nil {
			return err
		}
	}
	return nil
}

// storeRegisters writes V0 through Vx to memory starting at I. The
// index register keeps its value.
func (c *CPU) storeRegisters(x Register) error {
	base := c.regs.I()
	for i := Register(0); i <= x; i++ {
		if err := c.mem.Write(base+Address(i), c.regs.V[i]); err != nil {
			return err
		}
	}
	return nil
}

// loadRegisters reads V0 through Vx from memory starting at I. The
// index register keeps its value.
func (c *CPU) loadRegisters(x Register) error {
	base := c.regs.I()
	for i := Register(0); i <= x; i++ {
		value, err := c.mem.Read(base + Address(i))
		if err != nil {
			return err
		}
		c.regs.V[i] = value
	}
	return nil
}
