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
    `github.com/oleiade/lane`
)

/* Liveness is a backwards-may dataflow analysis. Within a block,
 * live_in is computed from live_out in a single linear sweep; globally
 * a worklist iterates the blocks to a fixed point. */

// LiveUpdate applies one instruction to a liveness set during a
// backward sweep:
//
//      live_in = GEN + (live_out - KILL)
//
// Destinations are killed before sources are generated. The order is
// deliberate and must not change: an instruction reads all of its
// sources before writing its destinations, so for operands aliasing
// the same value within one instruction the source keeps it live.
func LiveUpdate(live LiveSet, ins *Instr) {
    for _, r := range ins.Dest {
        live.Kill(r)
    }
    for _, r := range ins.Src {
        live.Gen(r)
    }
}

// livenessBlockUpdate recomputes one block, reporting whether live_in
// changed. live_out is always overwritten.
func livenessBlockUpdate(bb *BasicBlock) bool {
    /* live_out[b] = union of live_in over every successor */
    for _, sc := range bb.Succ {
        bb.LiveOut.Union(sc.LiveIn)
    }

    /* sweep the instructions backwards */
    live := bb.LiveOut.Clone()
    for i := len(bb.Ins) - 1; i >= 0; i-- {
        LiveUpdate(live, bb.Ins[i])
    }

    /* diff against the previous live_in to detect progress */
    if live.Equal(bb.LiveIn) {
        return false
    }

    /* replace it with the new value */
    bb.LiveIn = live
    return true
}

// fixpoint drives livenessBlockUpdate to global convergence. Every
// block starts on the worklist with empty live sets; blocks are
// popped from the tail so the deepest blocks go first (liveness flows
// backwards), and the predecessors of any block that made progress
// are pushed back at the head. Duplicate entries are harmless since
// reprocessing a converged block is idempotent, and the bounded
// monotone lattice guarantees termination.
func fixpoint(cfg *CFG, empty func() LiveSet) {
    wl := lane.NewDeque()

    /* reset everything and enqueue all the blocks */
    for _, bb := range cfg.Blocks {
        bb.LiveIn = empty()
        bb.LiveOut = empty()
        wl.Append(bb)
    }

    /* iterate until no block makes progress */
    for !wl.Empty() {
        if bb := wl.Pop().(*BasicBlock); livenessBlockUpdate(bb) {
            for _, p := range bb.Pred {
                wl.Prepend(p)
            }
        }
    }
}

// ComputeLiveness ensures every block carries valid LiveIn / LiveOut
// lane masks. It is a no-op while the cached result is valid; passes
// that mutate the IR must call InvalidateLiveness first or they will
// observe stale results.
func ComputeLiveness(cfg *CFG) {
    if !cfg.hasLiveness {
        cfg.livenessRuns++
        fixpoint(cfg, func() LiveSet { return newLaneSet(cfg.TempCount) })
        cfg.hasLiveness = true
    }
}

// InvalidateLiveness marks the liveness data stale. Call it after any
// instruction or CFG mutation.
func InvalidateLiveness(cfg *CFG) {
    cfg.hasLiveness = false
}

// ComputePostRALiveness computes register-file liveness after
// allocation. The result is not cached: post-RA consumers run once,
// right after they mutated the stream. The lane-mask sets are
// replaced by register sets, so any cached virtual liveness is gone.
func ComputePostRALiveness(cfg *CFG) {
    cfg.hasLiveness = false
    fixpoint(cfg, func() LiveSet { return new(RegSet) })
}
