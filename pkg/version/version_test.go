package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	v := Get()

	assert.Equal(t, "dev", v.Version)
	assert.Equal(t, "none", v.GitCommit)
	assert.Equal(t, runtime.Version(), v.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, v.Platform)
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abcdefg", BuildTime: "2024-04-27T15:04:05Z", GoVersion: "go1.24.2", Platform: "linux/amd64"}

	assert.Equal(t,
		"textcombiner version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.24.2 on linux/amd64",
		info.String())
}
