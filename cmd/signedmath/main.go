/*
 * SignedMath - Checked signed fixed-width integer arithmetic
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// signedmath is a calculator over checked 256-bit signed integer arithmetic.
//
// With no arguments it starts an interactive REPL.
// With arguments it evaluates each argument as an expression:
//
//	signedmath '1234 + 5678' '(7000 / 5678) * -1'
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		runREPL()
		return
	}

	for _, arg := range os.Args[1:] {
		result, err := evaluate(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, colorizeError(err.Error()))
			os.Exit(1)
		}
		fmt.Println(colorizeResult(result))
	}
}
