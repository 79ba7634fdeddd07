package message

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pilekit/core"
)

// Messages participate in typed piles.
var _ core.Identifiable = (*Message)(nil)
var _ core.Tagged = (*Message)(nil)

func TestThread_OrderedHistory(t *testing.T) {
	th := NewThread()
	sys := NewSystem("be brief")
	usr := NewUser("hello")
	asst := NewAssistant("hi")
	require.NoError(t, th.Add(sys, usr, asst))

	history := th.History()
	require.Len(t, history, 3)
	assert.Equal(t, RoleSystem, history[0].Role)
	assert.Equal(t, RoleUser, history[1].Role)
	assert.Equal(t, RoleAssistant, history[2].Role)

	last, err := th.Last()
	require.NoError(t, err)
	assert.Equal(t, asst, last)

	got, err := th.Get(usr.Identity())
	require.NoError(t, err)
	assert.Equal(t, usr, got)

	th.Clear()
	assert.Equal(t, 0, th.Len())
	_, err = th.Last()
	require.ErrorIs(t, err, core.ErrEmptyPile)
}

func TestThread_AddIdempotent(t *testing.T) {
	th := NewThread()
	m := NewUser("hello")
	require.NoError(t, th.Add(m))
	require.NoError(t, th.Add(m))
	assert.Equal(t, 1, th.Len())
}

func TestThread_LastConcurrentClear(t *testing.T) {
	th := NewThread()

	// Last races against Clear; the only acceptable failure is ErrEmptyPile.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			assert.NoError(t, th.Add(NewUser("ping")))
			th.Clear()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := th.Last(); err != nil {
				assert.ErrorIs(t, err, core.ErrEmptyPile)
			}
		}
	}()
	wg.Wait()
}

func TestNewToolResult_ErrorPayload(t *testing.T) {
	m := NewToolResult("call_1", "lookup", "", errors.New("boom"))
	assert.Equal(t, RoleTool, m.Role)
	assert.Equal(t, "error: boom", m.Result)

	ok := NewToolResult("call_2", "lookup", "42", nil)
	assert.Equal(t, "42", ok.Result)
}

func TestChatParams_RoleMapping(t *testing.T) {
	th := NewThread()
	require.NoError(t, th.Add(
		NewSystem("be brief"),
		NewUser("weather in berlin?"),
		NewToolCalls(ToolCall{ID: "call_1", Name: "weather", Arguments: `{"city":"berlin"}`}),
		NewToolResult("call_1", "weather", "sunny", nil),
		NewAssistant("It is sunny."),
	))

	params := ChatParams(th)
	require.Len(t, params, 5)
	assert.NotNil(t, params[0].OfSystem)
	assert.NotNil(t, params[1].OfUser)
	require.NotNil(t, params[2].OfAssistant)
	require.Len(t, params[2].OfAssistant.ToolCalls, 1)
	assert.Equal(t, "call_1", params[2].OfAssistant.ToolCalls[0].ID)
	assert.Equal(t, "weather", params[2].OfAssistant.ToolCalls[0].Function.Name)
	require.NotNil(t, params[3].OfTool)
	assert.NotNil(t, params[4].OfAssistant)
}

func TestMessageParams_SystemSeparated(t *testing.T) {
	th := NewThread()
	require.NoError(t, th.Add(
		NewSystem("be brief"),
		NewUser("weather in berlin?"),
		NewToolCalls(ToolCall{ID: "call_1", Name: "weather", Arguments: `{"city":"berlin"}`}),
		NewToolResult("call_1", "weather", "sunny", nil),
		NewAssistant("It is sunny."),
	))

	system := SystemBlocks(th)
	require.Len(t, system, 1)
	assert.Equal(t, "be brief", system[0].Text)

	params := MessageParams(th)
	// system and tool turns are folded away: user, assistant(tool_use +
	// tool_result), assistant(text)
	require.Len(t, params, 3)
	assert.Equal(t, "user", string(params[0].Role))
	assert.Equal(t, "assistant", string(params[1].Role))
	require.Len(t, params[1].Content, 2, "tool_use plus attached tool_result")
	assert.Equal(t, "assistant", string(params[2].Role))
}
