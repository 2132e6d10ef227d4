package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/wof/debugs"
	"github.com/reusee/wof/woflang"
)

type Module struct {
	dscope.Module
	Woflang woflang.Module
	Debugs  debugs.Module
}
