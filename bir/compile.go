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

type Pass interface {
    Apply(*CFG)
}

type PassDescriptor struct {
    Pass Pass
    Name string
}

var Passes = [...]PassDescriptor {
    { Name: "Dead Code Elimination", Pass: new(DeadCodeElim) },
}

var PostRAPasses = [...]PassDescriptor {
    { Name: "Post-RA Dead Code Elimination", Pass: new(PostRADCE) },
}

// Optimize runs the pre-allocation pass pipeline over the CFG.
func Optimize(cfg *CFG) {
    for _, p := range Passes {
        p.Pass.Apply(cfg)
    }
}

// OptimizePostRA runs the passes that are only legal once every value
// has been assigned a machine register.
func OptimizePostRA(cfg *CFG) {
    for _, p := range PostRAPasses {
        p.Pass.Apply(cfg)
    }
}
