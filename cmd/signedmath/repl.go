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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
)

func runREPL() {
	printReplWelcome()

	lineNumber := 1

	executor := func(line string) {
		defer func() {
			lineNumber++
		}()

		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		if strings.HasPrefix(line, ".") {
			handleCommand(line)
			return
		}

		result, err := evaluate(line)
		if err != nil {
			fmt.Println(colorizeError(err.Error()))
			return
		}

		fmt.Println(colorizeResult(result))
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) == 0 || !strings.HasPrefix(word, ".") {
			return nil
		}

		suggests := []prompt.Suggest{
			{Text: ".help", Description: "Print the help message"},
			{Text: ".exit", Description: "Exit the calculator"},
		}

		return prompt.FilterHasPrefix(suggests, word, false)
	}

	changeLivePrefix := func() (string, bool) {
		return fmt.Sprintf("%d> ", lineNumber), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
	}
	prompt.New(executor, suggest, options...).Run()
}

const replHelpMessage = `
Enter arithmetic expressions to evaluate them with checked Int256 arithmetic.
Supported operators: + - * / % and parentheses.
Results that would fall outside the Int256 range are reported as overflow.

Commands are prefixed with a dot. Valid commands are:

.exit     Exit the calculator
.help     Print this help message

Press ^C to abort current expression, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func handleCommand(command string) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}

func printReplWelcome() {
	fmt.Printf("Welcome to the SignedMath calculator!\n%s\n\n", replAssistanceMessage)
}
