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
    `strings`

    `gonum.org/v1/gonum/graph`
    `gonum.org/v1/gonum/graph/simple`
    `gonum.org/v1/gonum/graph/traverse`
)

// CFG is the per-compilation control-flow graph. Blocks holds every
// block in layout (program) order; TempCount bounds the virtual node
// space. The liveness cache flag lives here rather than in ambient
// state, Compute / Invalidate are its only mutators.
type CFG struct {
    Root      *BasicBlock
    Blocks    []*BasicBlock
    TempCount int

    maxblock     int
    hasLiveness  bool
    livenessRuns int
}

func CreateCFG(tempCount int) (cfg *CFG) {
    cfg = &CFG { TempCount: tempCount }
    cfg.Root = cfg.CreateBlock()
    return
}

// CreateBlock appends a fresh empty block at the end of the layout.
func (self *CFG) CreateBlock() (bb *BasicBlock) {
    bb = &BasicBlock { Id: self.maxblock }
    self.maxblock++
    self.Blocks = append(self.Blocks, bb)
    return
}

// PostOrder iterates the blocks reachable from the root in DFS
// post-order.
func (self *CFG) PostOrder() *BasicBlockIter {
    return newBasicBlockIter(self)
}

// Rebuild drops blocks unreachable from the root and re-derives every
// predecessor list from the successor edges. Liveness data does not
// survive a rebuild.
func (self *CFG) Rebuild() {
    g := simple.NewDirectedGraph()

    /* add all the blocks */
    for _, bb := range self.Blocks {
        g.AddNode(simple.Node(bb.Id))
    }

    /* add all the edges, self-loops don't affect reachability */
    for _, bb := range self.Blocks {
        for _, sc := range bb.Succ {
            if bb.Id != sc.Id && !g.HasEdgeFromTo(int64(bb.Id), int64(sc.Id)) {
                g.SetEdge(g.NewEdge(simple.Node(bb.Id), simple.Node(sc.Id)))
            }
        }
    }

    /* traverse from the root */
    reach := make(map[int]struct{}, len(self.Blocks))
    visit := traverse.DepthFirst { Visit: func(n graph.Node) { reach[int(n.ID())] = struct{}{} } }
    visit.Walk(g, simple.Node(self.Root.Id), nil)

    /* drop the unreachable blocks */
    bbs := self.Blocks
    self.Blocks = self.Blocks[:0]
    for _, bb := range bbs {
        if _, ok := reach[bb.Id]; ok {
            self.Blocks = append(self.Blocks, bb)
        }
    }

    /* rebuild the predecessor lists, dropping edges from dead blocks */
    for _, bb := range self.Blocks { bb.Pred = nil }
    for _, bb := range self.Blocks {
        for _, sc := range bb.Succ {
            sc.Pred = append(sc.Pred, bb)
        }
    }

    /* whatever liveness data existed is now stale */
    self.hasLiveness = false
}

func (self *CFG) String() string {
    ss := make([]string, 0, len(self.Blocks))
    for _, bb := range self.Blocks { ss = append(ss, bb.String()) }
    return strings.Join(ss, "\n")
}
