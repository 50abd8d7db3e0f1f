// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"fmt"

	"github.com/katalvlaran/lvbrain/connectivity"
)

func ExampleGenerateSurrogate() {
	conn, err := connectivity.GenerateSurrogate(74)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := conn.Configure(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(conn.NumberOfRegions, conn.NumberOfConnections, conn.DelaysShape())
	// Output: 74 75 [74 74]
}

func ExampleConnectivity_ScaledWeights() {
	conn, _ := connectivity.LoadDefault()
	_ = conn.Configure()

	w, _ := conn.ScaledWeights(connectivity.ScaleTract)
	fmt.Println(w.Shape())
	// Output: 76 76
}
