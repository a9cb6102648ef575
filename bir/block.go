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
    `strings`
)

// BasicBlock owns an ordered instruction list and its CFG edges.
// LiveIn and LiveOut are owned by the most recent liveness
// computation; they are discarded and reallocated on recomputation,
// never updated incrementally.
type BasicBlock struct {
    Id      int
    Ins     []*Instr
    Pred    []*BasicBlock
    Succ    []*BasicBlock
    LiveIn  LiveSet
    LiveOut LiveSet
}

// AddEdge links self to the successor block, keeping both edge lists
// consistent.
func (self *BasicBlock) AddEdge(to *BasicBlock) {
    self.Succ = append(self.Succ, to)
    to.Pred = append(to.Pred, self)
}

func (self *BasicBlock) Append(p *Instr) {
    self.Ins = append(self.Ins, p)
}

// Remove deletes the instruction at index i from the block.
func (self *BasicBlock) Remove(i int) {
    self.Ins = append(self.Ins[:i], self.Ins[i + 1:]...)
}

func (self *BasicBlock) String() string {
    np := len(self.Pred)
    ns := len(self.Succ)
    ss := make([]string, 0, len(self.Ins) + 2)

    /* dump the predecessors */
    pp := make([]string, 0, np)
    for _, p := range self.Pred { pp = append(pp, fmt.Sprintf("bb_%d", p.Id)) }

    /* dump the successors */
    sp := make([]string, 0, ns)
    for _, s := range self.Succ { sp = append(sp, fmt.Sprintf("bb_%d", s.Id)) }

    /* dump the header and instructions */
    ss = append(ss, fmt.Sprintf("bb_%d:  # pred = {%s}, succ = {%s}", self.Id, strings.Join(pp, ", "), strings.Join(sp, ", ")))
    for _, v := range self.Ins { ss = append(ss, "    " + v.String()) }

    /* join them together */
    return strings.Join(ss, "\n")
}
