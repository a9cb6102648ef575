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

func TestPostRADCE_DeadDestNulled(t *testing.T) {
    cfg := CreateCFG(0)
    b0 := cfg.Root
    b1 := cfg.CreateBlock()
    b0.AddEdge(b1)

    ins := NewInstr(OpFMul, []Ref{Phys(4, 2)}, []Ref{Phys(0, 1), Phys(1, 1)})
    b0.Append(ins)
    b1.Append(NewInstr(OpStore, nil, []Ref{Phys(0, 2)}))

    /* no successor reads r4 or r5: the destination goes away but the
     * instruction itself stays in the stream */
    PostRADCE{}.Apply(cfg)
    require.Len(t, b0.Ins, 1)
    require.True(t, ins.Dest[0].IsNull())
}

func TestPostRADCE_RangeOverlapKept(t *testing.T) {
    cfg := CreateCFG(0)
    b0 := cfg.Root
    b1 := cfg.CreateBlock()
    b0.AddEdge(b1)

    ins := NewInstr(OpFMul, []Ref{Phys(4, 2)}, []Ref{Phys(0, 1), Phys(1, 1)})
    b0.Append(ins)
    b1.Append(NewInstr(OpStore, nil, []Ref{Phys(5, 1)}))

    /* only r5 of the r4-r5 pair is read downstream, that is enough */
    PostRADCE{}.Apply(cfg)
    require.Equal(t, Phys(4, 2), ins.Dest[0])
}

func TestPostRADCE_NonCullable(t *testing.T) {
    cfg := CreateCFG(0)
    b0 := cfg.Root

    blend := NewInstr(OpBlend, []Ref{Phys(0, 4)}, []Ref{Phys(16, 2)})
    fetch := NewInstr(OpTexFetch, []Ref{Phys(8, 4)}, []Ref{Phys(16, 2)})
    b0.Append(fetch)
    b0.Append(blend)

    /* every destination here is dead, none may be culled */
    PostRADCE{}.Apply(cfg)
    require.Equal(t, Phys(8, 4), fetch.Dest[0])
    require.Equal(t, Phys(0, 4), blend.Dest[0])
}

func TestPostRADCE_AtomicKeepsDest(t *testing.T) {
    cfg := CreateCFG(0)
    b0 := cfg.Root

    ins := NewInstr(OpAtomicXchg, []Ref{Phys(6, 1)}, []Ref{Phys(0, 1), Phys(1, 1)})
    b0.Append(ins)

    PostRADCE{}.Apply(cfg)
    require.Len(t, b0.Ins, 1)
    require.Equal(t, Phys(6, 1), ins.Dest[0])
}

func TestPostRADCE_DiscardQuirk(t *testing.T) {
    cfg := CreateCFG(0)
    b0 := cfg.Root

    sel := NewInstr(OpDTSel, []Ref{Phys(2, 1)}, []Ref{Imm(3)})
    b0.Append(sel)
    b0.Append(NewInstr(OpStore, nil, []Ref{Phys(2, 1)}))

    /* the descriptor-select destination is dropped even while live */
    PostRADCE{}.Apply(cfg)
    require.True(t, sel.Dest[0].IsNull())
    require.Len(t, b0.Ins, 2)
}

func TestPostRADCE_Optimize(t *testing.T) {
    cfg := CreateCFG(0)
    b0 := cfg.Root
    ins := NewInstr(OpMov, []Ref{Phys(10, 1)}, []Ref{Imm(0)})
    b0.Append(ins)

    OptimizePostRA(cfg)
    require.Len(t, b0.Ins, 1)
    require.True(t, ins.Dest[0].IsNull())
}
