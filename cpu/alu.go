package cpu

// Alu computes op on the A and B register values.
//
// Add, subtract, increment, decrement and shifts produce their own carry
// out; the logic operations pass carryIn through unchanged. Subtraction is
// A + ^B + 1, so carry set means no borrow.
func Alu(op AluOp, a, b uint16, carryIn bool) (result uint16, carry bool) {
	carry = carryIn

	switch op {
	case ALU_OP_ADD:
		sum := uint32(a) + uint32(b)
		result, carry = uint16(sum), sum > 0xffff
	case ALU_OP_SUB:
		sum := uint32(a) + uint32(^b) + 1
		result, carry = uint16(sum), sum > 0xffff
	case ALU_OP_INC:
		result, carry = a+1, a == 0xffff
	case ALU_OP_DEC:
		result, carry = a-1, a != 0
	case ALU_OP_AND:
		result = a & b
	case ALU_OP_OR:
		result = a | b
	case ALU_OP_XOR:
		result = a ^ b
	case ALU_OP_NOT:
		result = ^a
	case ALU_OP_SHL:
		result, carry = a<<1, (a&0x8000) != 0
	case ALU_OP_SHR:
		result, carry = a>>1, (a&1) != 0
	default:
		result = a
	}

	return
}
