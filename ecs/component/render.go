package component

import "github.com/milk9111/portalarena/scene"

type RenderNode struct {
	Node scene.NodeID
}

var RenderNodeComponent = NewComponent[RenderNode]()
