package apt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lempctl/lempctl/internal/system"
)

type fakeRunner struct {
	commands []system.Command
	err      error
}

func (f *fakeRunner) Run(_ context.Context, cmd system.Command) error {
	f.commands = append(f.commands, cmd)
	return f.err
}

func (f *fakeRunner) Output(_ context.Context, cmd system.Command) (string, error) {
	f.commands = append(f.commands, cmd)
	return "", f.err
}

func TestManager_Update(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	m := NewManager(runner)

	require.NoError(t, m.Update(context.Background()))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "apt-get", runner.commands[0].Name)
	assert.Equal(t, []string{"update"}, runner.commands[0].Args)
	assert.Contains(t, runner.commands[0].Env, "DEBIAN_FRONTEND=noninteractive")
}

func TestManager_Upgrade_AssumesYes(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	m := NewManager(runner)

	require.NoError(t, m.Upgrade(context.Background()))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{"upgrade", "-y"}, runner.commands[0].Args)
}

func TestManager_Install_SingleCall(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	m := NewManager(runner)

	require.NoError(t, m.Install(context.Background(), "nginx", "mysql-server", "mysql-client"))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{"install", "-y", "nginx", "mysql-server", "mysql-client"}, runner.commands[0].Args)
	assert.Contains(t, runner.commands[0].Env, "DEBIAN_FRONTEND=noninteractive")
}

func TestManager_Preseed_FeedsStdin(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	m := NewManager(runner)

	selections := "phpmyadmin phpmyadmin/reconfigure-webserver multiselect\n"
	require.NoError(t, m.Preseed(context.Background(), selections))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "debconf-set-selections", runner.commands[0].Name)
	assert.Equal(t, selections, runner.commands[0].Stdin)
}

func TestManager_PropagatesRunnerError(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{err: errors.New("exit status 100")}
	m := NewManager(runner)

	assert.Error(t, m.Update(context.Background()))
	assert.Error(t, m.Install(context.Background(), "nginx"))
}
