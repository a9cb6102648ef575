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

// Instr is one machine-level instruction with ordered destination and
// source operand lists. Operand order is significant to consumers but
// not to liveness.
type Instr struct {
    Op   Op
    Dest []Ref
    Src  []Ref
}

func NewInstr(op Op, dest []Ref, src []Ref) *Instr {
    return &Instr {
        Op   : op,
        Dest : dest,
        Src  : src,
    }
}

func (self *Instr) String() string {
    if len(self.Dest) == 0 && len(self.Src) == 0 {
        return self.Op.String()
    } else if len(self.Dest) == 0 {
        return fmt.Sprintf("%s %s", self.Op, refslicerepr(self.Src))
    } else if len(self.Src) == 0 {
        return fmt.Sprintf("%s = %s", refslicerepr(self.Dest), self.Op)
    } else {
        return fmt.Sprintf("%s = %s %s", refslicerepr(self.Dest), self.Op, refslicerepr(self.Src))
    }
}
