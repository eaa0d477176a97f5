package component

import "github.com/milk9111/portalarena/dash"

type Dash struct {
	State dash.State
}

var DashComponent = NewComponent[Dash]()
