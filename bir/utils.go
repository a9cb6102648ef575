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

    `github.com/davecgh/go-spew/spew`
    `github.com/oleiade/lane`
)

// throw reports an internal invariant violation. These are compiler
// bugs, not user errors, so they are fatal.
func throw(msg string, v interface{}) {
    panic(msg + ": " + strings.TrimSpace(spew.Sdump(v)))
}

func stacknew(v interface{}) (s *lane.Stack) {
    s = lane.NewStack()
    s.Push(v)
    return
}

func refslicerepr(refs []Ref) string {
    ss := make([]string, 0, len(refs))
    for _, r := range refs { ss = append(ss, r.String()) }
    return strings.Join(ss, ", ")
}

func blockreverse(bb []*BasicBlock) {
    for i, j := 0, len(bb) - 1; i < j; i, j = i + 1, j - 1 {
        bb[i], bb[j] = bb[j], bb[i]
    }
}
