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
    `bytes`
    `fmt`
    `strings`

    `github.com/bytedance/gopkg/lang/dirtmake`
)

// LiveSet is one element of the liveness lattice. The two
// implementations share the transfer functions and the fixed-point
// driver: LaneSet carries per-node lane masks before register
// allocation, RegSet one bit per machine register afterwards.
//
// Kill and Gen ignore operands outside the set's domain (nulls,
// constants, out-of-range nodes), which is how non-temporary operands
// are skipped during a sweep.
type LiveSet interface {
    fmt.Stringer
    Union(other LiveSet)
    Kill(r Ref)
    Gen(r Ref)
    Live(r Ref) bool
    Equal(other LiveSet) bool
    Clone() LiveSet
}

// LaneSet maps every virtual node in [0, TempCount) to an 8-bit lane
// mask. Values narrower than one allocation unit occupy a sub-range
// of the mask.
type LaneSet []uint8

func newLaneSet(n int) LaneSet {
    return make(LaneSet, n)
}

func (self LaneSet) Union(other LiveSet) {
    for i, v := range other.(LaneSet) {
        self[i] |= v
    }
}

func (self LaneSet) Kill(r Ref) {
    if i := r.Index(); r.Kind() == K_node && i < len(self) {
        self[i] &^= r.LaneMask()
    }
}

func (self LaneSet) Gen(r Ref) {
    if i := r.Index(); r.Kind() == K_node && i < len(self) {
        self[i] |= r.LaneMask()
    }
}

func (self LaneSet) Live(r Ref) bool {
    i := r.Index()
    return r.Kind() == K_node && i < len(self) && self[i] & r.LaneMask() != 0
}

func (self LaneSet) Equal(other LiveSet) bool {
    return bytes.Equal(self, other.(LaneSet))
}

func (self LaneSet) Clone() LiveSet {
    buf := dirtmake.Bytes(len(self), len(self))
    copy(buf, self)
    return LaneSet(buf)
}

func (self LaneSet) String() string {
    nb := 0
    ss := make([]string, 0, len(self))

    /* dump the non-empty masks */
    for i, v := range self {
        if v != 0 {
            nb++
            ss = append(ss, fmt.Sprintf("%%%d:%02x", i, v))
        }
    }

    /* join them together */
    if nb == 0 {
        return "{}"
    } else {
        return "{" + strings.Join(ss, ", ") + "}"
    }
}

// RegSet is the post-allocation representation: one bit per machine
// register, the whole function fits in a single word.
type RegSet uint64

func (self *RegSet) Union(other LiveSet) {
    *self |= *other.(*RegSet)
}

func (self *RegSet) Kill(r Ref) {
    if r.Kind() == K_reg {
        *self &^= RegSet(r.RegMask())
    }
}

func (self *RegSet) Gen(r Ref) {
    if r.Kind() == K_reg {
        *self |= RegSet(r.RegMask())
    }
}

func (self *RegSet) Live(r Ref) bool {
    return r.Kind() == K_reg && uint64(*self) & r.RegMask() != 0
}

func (self *RegSet) Equal(other LiveSet) bool {
    return *self == *other.(*RegSet)
}

func (self *RegSet) Clone() LiveSet {
    rs := *self
    return &rs
}

func (self *RegSet) String() string {
    ss := []string(nil)

    /* dump every live register */
    for i := 0; i < MaxReg; i++ {
        if uint64(*self) & (uint64(1) << i) != 0 {
            ss = append(ss, fmt.Sprintf("r%d", i))
        }
    }

    /* join them together */
    if ss == nil {
        return "{}"
    } else {
        return "{" + strings.Join(ss, ", ") + "}"
    }
}
