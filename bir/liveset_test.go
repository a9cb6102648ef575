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
    `testing`

    `github.com/stretchr/testify/require`
)

func TestRef_Accessors(t *testing.T) {
    r := NodeLane(5, 2, 3)
    require.Equal(t, K_node, r.Kind())
    require.Equal(t, 5, r.Index())
    require.Equal(t, 2, r.Count())
    require.Equal(t, 3, r.Offset())
    require.Equal(t, uint8(0x18), r.LaneMask())
    require.Equal(t, "%5.3 x2", r.String())

    p := Phys(4, 2)
    require.Equal(t, K_reg, p.Kind())
    require.Equal(t, uint64(0x30), p.RegMask())
    require.Equal(t, "r4-r5", p.String())

    require.True(t, Null.IsNull())
    require.Equal(t, "_", Null.String())
    require.Equal(t, "#7", Imm(7).String())
}

func TestRef_Bounds(t *testing.T) {
    require.Panics(t, func() { Phys(63, 2) })
    require.Panics(t, func() { Phys(-1, 1) })
    require.Panics(t, func() { NodeLane(0, 4, 6) })
    require.Panics(t, func() { NodeLane(0, 0, 0) })
    require.Panics(t, func() { Node(-1) })
}

func TestInstr_String(t *testing.T) {
    require.Equal(t, "%1 = fadd %0, #2", NewInstr(OpFAdd, []Ref{Node(1)}, []Ref{Node(0), Imm(2)}).String())
    require.Equal(t, "store r4, #0", NewInstr(OpStore, nil, []Ref{Phys(4, 1), Imm(0)}).String())
    require.Equal(t, "%3 = load", NewInstr(OpLoad, []Ref{Node(3)}, nil).String())
    require.Equal(t, "nop", NewInstr(OpNop, nil, nil).String())
}

func TestLaneSet_KillGen(t *testing.T) {
    s := newLaneSet(4)
    s.Gen(NodeLane(2, 2, 4))
    require.Equal(t, uint8(0x30), s[2])
    require.True(t, s.Live(NodeLane(2, 1, 5)))
    require.False(t, s.Live(NodeLane(2, 1, 0)))

    s.Kill(NodeLane(2, 1, 4))
    require.Equal(t, uint8(0x20), s[2])

    /* out-of-domain operands are no-ops */
    s.Gen(Node(9))
    s.Gen(Imm(3))
    s.Kill(Phys(2, 1))
    require.Equal(t, LaneSet{0, 0, 0x20, 0}, s)
    require.False(t, s.Live(Phys(2, 1)))
}

func TestLaneSet_UnionEqualClone(t *testing.T) {
    a := newLaneSet(3)
    b := newLaneSet(3)
    a.Gen(Node(0))
    b.Gen(NodeLane(1, 1, 2))
    a.Union(b)
    require.Equal(t, LaneSet{0x01, 0x04, 0}, a)
    require.False(t, a.Equal(b))

    c := a.Clone()
    require.True(t, c.Equal(a))
    c.Kill(Node(0))
    require.False(t, c.Equal(a), "clone must not share storage")
}

func TestRegSet_KillGen(t *testing.T) {
    s := new(RegSet)
    s.Gen(Phys(4, 2))
    require.Equal(t, RegSet(0x30), *s)
    require.True(t, s.Live(Phys(5, 1)))
    require.True(t, s.Live(Phys(4, 2)))
    require.False(t, s.Live(Phys(6, 1)))

    s.Kill(Phys(5, 1))
    require.Equal(t, RegSet(0x10), *s)

    /* virtual operands never touch the register file */
    s.Gen(Node(3))
    s.Kill(Node(4))
    require.Equal(t, RegSet(0x10), *s)
    require.False(t, s.Live(Node(4)))

    o := new(RegSet)
    o.Gen(Phys(0, 1))
    s.Union(o)
    require.Equal(t, RegSet(0x11), *s)

    c := s.Clone()
    require.True(t, c.Equal(s))
    c.Kill(Phys(0, 1))
    require.False(t, c.Equal(s))
}
