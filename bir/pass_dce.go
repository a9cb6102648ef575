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

// DeadCodeElim is the pre-allocation liveness-based dead code
// elimination pass. It walks every block backwards, nulling dead
// destinations and dropping instructions that no longer produce
// anything, while re-deriving the block's live_in in the same sweep,
// so liveness stays valid on exit.
type DeadCodeElim struct{}

func (DeadCodeElim) Apply(cfg *CFG) {
    InvalidateLiveness(cfg)
    ComputeLiveness(cfg)

    /* process the blocks in reverse layout order */
    for n := len(cfg.Blocks) - 1; n >= 0; n-- {
        bb := cfg.Blocks[n]
        live := newLaneSet(cfg.TempCount)

        /* seed from the successors */
        for _, sc := range bb.Succ {
            live.Union(sc.LiveIn)
        }

        /* sweep the instructions backwards, removal is safe going down */
        for i := len(bb.Ins) - 1; i >= 0; i-- {
            ins := bb.Ins[i]
            allNull := true

            /* null the dead destinations: in range, no live bit in the
             * write mask, and the opcode does not need its result
             * register to perform the operation */
            for d, r := range ins.Dest {
                if !ins.Op.RequireDest() && r.Kind() == K_node && r.Index() < cfg.TempCount && !live.Live(r) {
                    ins.Dest[d] = Null
                }
                allNull = allNull && ins.Dest[d].IsNull()
            }

            /* nothing produced and nothing observable: drop the whole
             * instruction without generating its sources */
            if allNull && !ins.Op.HasSideEffects() {
                bb.Remove(i)
            } else {
                LiveUpdate(live, ins)
            }
        }

        /* the sweep recomputed an exact live_in, keep it */
        bb.LiveIn = live
    }
}
