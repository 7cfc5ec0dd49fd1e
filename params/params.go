package params

import (
	"fmt"
	"time"
)

const (
	ServerBodyLimit    = 1048576
	ServerIdleTimeout  = 30 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
	ShutdownTimeout    = 10 * time.Second
)

const (
	CSRFTokenExpiration   = 2 * time.Hour
	SubmitLockExpiration  = 30 * time.Second
	LocalStorageMaxAge    = 7 * 24 * time.Hour
	AuthAPIRequestTimeout = 10 * time.Second
)

const (
	AuthLoginPath  = "/auth/login"
	AuthSignupPath = "/auth/signup"
)

// keys persisted in the client local storage
const (
	StorageKeyToken    = "token"
	StorageKeyUsername = "username"
)

// storage key prefixes
const (
	SessionKeyPrefix      = "session:"
	LocalStorageKeyPrefix = "local:"
	SubmitLockKeyPrefix   = "submit:"
)

const (
	LoginRedirectURL  = "/"
	SignupRedirectURL = "/login"
)

const (
	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 1
	VersionMeta  = "stable"
)

var Version = func() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}()

var VersionWithMeta = func() string {
	v := Version
	if VersionMeta != "" {
		v += "-" + VersionMeta
	}
	return v
}()

func VersionWithCommit(gitCommit, gitDate string) string {
	vsn := VersionWithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if (VersionMeta != "stable") && (gitDate != "") {
		vsn += "-" + gitDate
	}
	return vsn
}
