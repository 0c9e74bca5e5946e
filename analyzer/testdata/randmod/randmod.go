// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package randmod

import (
	"math/rand"
	randv2 "math/rand/v2"
)

func roll(rng *rand.Rand, bound int) int {
	return rng.Int() % bound // want `use Intn\(n\) instead`
}

func roll31(rng *rand.Rand, bound int32) int32 {
	return rng.Int31() % bound // want `use Int31n\(n\) instead`
}

func rollV2(rng *randv2.Rand, bound int) int {
	return rng.Int() % bound // want `use IntN\(n\) instead`
}

type source struct{ *rand.Rand }

func rollEmbedded(src source, bound int) int {
	return src.Int() % bound // want `use Intn\(n\) instead`
}

func bounded(rng *rand.Rand, bound int) int {
	return rng.Intn(bound)
}

func packageLevel(bound int) int {
	return rand.Int() % bound
}

func suppressed(rng *rand.Rand, bound int) int {
	return rng.Int() % bound //nolint:randmod
}
