// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/spf13/cobra"
)

var forgetAppID bool

func init() {
	appIDCmd.Flags().BoolVar(&forgetAppID, "forget", false, "Forget the remembered application id")
}

var appIDCmd = &cobra.Command{
	Use:   "appid",
	Short: "Show the id of the last application created",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		client := ensureClient()
		defer client.Close()

		if forgetAppID {
			if err := client.ForgetAppID(); err != nil {
				reportErrorf(errorRequestFail, err)
			}
			reportInfof(infoForgotAppID)
			return
		}
		id, ok := client.RememberedAppID()
		if !ok {
			reportInfof(infoNoRememberedAppID)
			return
		}
		reportInfof(infoRememberedAppID, id)
	},
}
