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

// PostRADCE cleans up dead results left behind by bundling and
// scheduling. By this stage the stream's shape is committed, so it
// only nulls individual destinations and never removes instructions.
type PostRADCE struct{}

func (PostRADCE) Apply(cfg *CFG) {
    ComputePostRALiveness(cfg)

    /* process the blocks in reverse layout order */
    for n := len(cfg.Blocks) - 1; n >= 0; n-- {
        bb := cfg.Blocks[n]
        live := bb.LiveOut.Clone()

        for i := len(bb.Ins) - 1; i >= 0; i-- {
            ins := bb.Ins[i]

            /* the descriptor-select result is a placeholder, always drop it */
            if ins.Op.DiscardsDest() && len(ins.Dest) != 0 {
                ins.Dest[0] = Null
            }

            /* null every dead register range of a cullable opcode */
            for d, r := range ins.Dest {
                if r.Kind() == K_reg && ins.Op.Cullable() && !live.Live(r) {
                    ins.Dest[d] = Null
                }
            }

            LiveUpdate(live, ins)
        }
    }
}
