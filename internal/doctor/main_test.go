package doctor

import (
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/goleak"
)

// helperEnv switches the test binary into a fake `zshift random`.
const helperEnv = "ZSHIFT_DOCTOR_HELPER"

func TestMain(m *testing.M) {
	switch os.Getenv(helperEnv) {
	case "":
	case "bare":
		fmt.Println("ZShift x ys")
		fmt.Println("FIGLET_FONT=slant")
		fmt.Println("ys")
		os.Exit(0)
	case "prefixed":
		fmt.Println("FIGLET_FONT=random")
		fmt.Println("ZSH_THEME=agnoster")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "zshift: no themes available")
		os.Exit(1)
	case "hang":
		time.Sleep(time.Hour)
		os.Exit(0)
	}

	goleak.VerifyTestMain(m)
}
