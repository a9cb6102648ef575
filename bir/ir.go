/*
 * Copyright 2023 Slatework Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bir

import (
    `fmt`
)

// Ref is a packed operand reference. Before register allocation an
// operand addresses a virtual node with a lane offset, afterwards a
// contiguous range of machine registers. The width ("count") is the
// number of allocation units the operand touches.
type Ref uint32

const (
    _B_count = 23
    _B_off   = 27
    _B_kind  = 30
)

const (
    _M_kind  = 0x03
    _M_off   = 0x07
    _M_count = 0x0f
)

const (
    _R_index = (1 << _B_count) - 1
)

type RefKind uint8

const (
    K_null RefKind = iota
    K_node
    K_reg
    K_imm
)

// Null is the "no operand" sentinel. Nulling a destination detaches
// the result without touching the rest of the instruction.
const Null Ref = 0

// MaxReg is the size of the physical register file. Post-allocation
// liveness for an entire function fits in a single uint64.
const MaxReg = 64

func mkref(kind RefKind, idx int, count int, off int) Ref {
    if idx < 0 || idx > _R_index {
        throw("bir: operand index out of range", idx)
    }
    if count < 1 || count > 8 {
        throw("bir: invalid operand width", count)
    }
    if off < 0 || off > 7 {
        throw("bir: invalid lane offset", off)
    }
    return Ref(uint32(kind) << _B_kind | uint32(off) << _B_off | uint32(count) << _B_count | uint32(idx))
}

// Node addresses one unit of virtual node id.
func Node(id int) Ref {
    return NodeLane(id, 1, 0)
}

// NodeLane addresses count sub-units of node id starting at lane off.
// The lane range must fit the 8-bit mask of a single unit.
func NodeLane(id int, count int, off int) Ref {
    r := mkref(K_node, id, count, off)
    if off + count > 8 {
        throw("bir: lane range overflows the unit mask", r)
    }
    return r
}

// Phys addresses count contiguous machine registers starting at reg.
func Phys(reg int, count int) Ref {
    if reg < 0 || reg + count > MaxReg {
        throw("bir: physical register range out of bounds", reg)
    }
    return mkref(K_reg, reg, count, 0)
}

// Imm is an inline constant source. It never participates in liveness.
func Imm(v int) Ref {
    return mkref(K_imm, v, 1, 0)
}

func (self Ref) Kind() RefKind {
    return RefKind((self >> _B_kind) & _M_kind)
}

func (self Ref) Index() int {
    return int(self & _R_index)
}

func (self Ref) Count() int {
    return int((self >> _B_count) & _M_count)
}

func (self Ref) Offset() int {
    return int((self >> _B_off) & _M_off)
}

func (self Ref) IsNull() bool {
    return self.Kind() == K_null
}

// LaneMask is the per-unit bitmask touched by a virtual operand.
func (self Ref) LaneMask() uint8 {
    return uint8(((1 << self.Count()) - 1) << self.Offset())
}

// RegMask is the register-file bitmask touched by a physical operand.
func (self Ref) RegMask() uint64 {
    return ((uint64(1) << self.Count()) - 1) << self.Index()
}

func (self Ref) String() string {
    switch self.Kind() {
        default: {
            return "<invalid>"
        }

        /* detached operand */
        case K_null: {
            return "_"
        }

        /* virtual node, with lane sub-range if narrower than a unit */
        case K_node: {
            if self.Count() == 1 && self.Offset() == 0 {
                return fmt.Sprintf("%%%d", self.Index())
            } else {
                return fmt.Sprintf("%%%d.%d x%d", self.Index(), self.Offset(), self.Count())
            }
        }

        /* physical register range */
        case K_reg: {
            if self.Count() == 1 {
                return fmt.Sprintf("r%d", self.Index())
            } else {
                return fmt.Sprintf("r%d-r%d", self.Index(), self.Index() + self.Count() - 1)
            }
        }

        /* inline constant */
        case K_imm: {
            return fmt.Sprintf("#%d", self.Index())
        }
    }
}

type Op uint8

const (
    OpNop Op = iota
    OpMov
    OpFAdd
    OpFMul
    OpLoad
    OpLoadVolatile
    OpStore
    OpAtomicXchg
    OpAtomicCmpXchg
    OpAtomicReturn
    OpTexFetch
    OpBlend
    OpDTSel
    OpBranch
)

// Opcodes register their behavioural properties here instead of being
// special-cased inside the passes.
type _OpInfo struct {
    name    string
    effects bool /* must execute even with no observed results       */
    reqdest bool /* result register participates in the operation    */
    staging bool /* writes a shared hardware resource, never culled  */
    discard bool /* result is a placeholder, always nulled after RA  */
}

var _OpTab = [...]_OpInfo {
    OpNop           : { name: "nop" },
    OpMov           : { name: "mov" },
    OpFAdd          : { name: "fadd" },
    OpFMul          : { name: "fmul" },
    OpLoad          : { name: "load" },
    OpLoadVolatile  : { name: "load.volatile", effects: true },
    OpStore         : { name: "store", effects: true },
    OpAtomicXchg    : { name: "axchg", effects: true, reqdest: true },
    OpAtomicCmpXchg : { name: "acmpxchg", effects: true, reqdest: true },
    OpAtomicReturn  : { name: "atom_return", effects: true, reqdest: true },
    OpTexFetch      : { name: "tex_fetch", staging: true },
    OpBlend         : { name: "blend", effects: true, staging: true },
    OpDTSel         : { name: "dtsel", discard: true },
    OpBranch        : { name: "branch", effects: true },
}

func (self Op) String() string {
    if int(self) < len(_OpTab) {
        return _OpTab[self].name
    } else {
        return fmt.Sprintf("op_%d", uint8(self))
    }
}

// HasSideEffects reports whether the instruction must execute even
// when every destination is dead.
func (self Op) HasSideEffects() bool {
    return _OpTab[self].effects
}

// RequireDest reports whether the destination operand takes part in
// the operation itself and must survive dead-code elimination.
func (self Op) RequireDest() bool {
    return _OpTab[self].reqdest
}

// DiscardsDest reports whether the destination is a placeholder that
// post-RA cleanup nulls unconditionally.
func (self Op) DiscardsDest() bool {
    return _OpTab[self].discard
}

// Cullable reports whether a dead destination of this opcode may be
// nulled after register allocation.
func (self Op) Cullable() bool {
    return self != OpBlend && !_OpTab[self].staging && !_OpTab[self].reqdest
}
