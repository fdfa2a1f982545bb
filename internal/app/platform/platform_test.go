package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFamily(t *testing.T) {
	t.Run("unix", func(t *testing.T) {
		f := FamilyOf(true)
		require.Equal(t, UnixTarget, f)
		require.Equal(t, "SCMDownloaderCLI.sh", f.Script())
		require.Equal(t, "unix", f.String())
	})

	t.Run("other", func(t *testing.T) {
		f := FamilyOf(false)
		require.Equal(t, OtherTarget, f)
		require.Equal(t, "SCMDownloaderCLI.bat", f.Script())
		require.Equal(t, "other", f.String())
	})
}

func TestLocal(t *testing.T) {
	env := NewLocalEnvironment()
	require.Equal(t, runtime.GOOS != "windows", env.IsUnix())
	if runtime.GOOS == "windows" {
		require.Equal(t, `\`, env.PathSeparator())
	} else {
		require.Equal(t, "/", env.PathSeparator())
	}
}

func TestJoin(t *testing.T) {
	require.Equal(t, "/opt/topaz/SCMDownloaderCLI.sh", Join("/", "/opt/topaz", "SCMDownloaderCLI.sh"))
	require.Equal(t, "/opt/topaz/SCMDownloaderCLI.sh", Join("/", "/opt/topaz/", "SCMDownloaderCLI.sh"))
	require.Equal(t, `C:\Topaz\SCMDownloaderCLI.bat`, Join(`\`, `C:\Topaz`, "SCMDownloaderCLI.bat"))
	require.Equal(t, "SCMDownloaderCLI.sh", Join("/", "", "SCMDownloaderCLI.sh"))
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unix  string
		batch string
	}{
		{name: "plain", value: "USER.PDS.*", unix: "USER.PDS.*", batch: `"USER.PDS.*"`},
		{name: "empty", value: "", unix: "", batch: `""`},
		{name: "quotes", value: `A "B" C`, unix: `A "B" C`, batch: `"A ""B"" C"`},
		{name: "backslash", value: `C:\work space\x`, unix: `C:\work space\x`, batch: `"C:\work space\x"`},
		{name: "percent", value: `%PATH%`, unix: `%PATH%`, batch: `"%%PATH%%"`},
		{name: "shell", value: `$(rm -rf /); 'x' & y | z`, unix: `$(rm -rf /); 'x' & y | z`, batch: `"$(rm -rf /); 'x' & y | z"`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.unix, Escape(UnixTarget, tc.value))
			require.Equal(t, tc.batch, Escape(OtherTarget, tc.value))
		})
	}
}
