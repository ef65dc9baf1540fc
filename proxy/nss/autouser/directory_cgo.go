//go:build cgo && !osusergo && (aix || darwin || dragonfly || freebsd || (linux && !android) || netbsd || openbsd || solaris)

package autouser

/*
#include <unistd.h>
#include <sys/types.h>
#include <pwd.h>
#include <stdlib.h>

static int autouser_getpwnam_r(const char *name, struct passwd *pwd,
	char *buf, size_t buflen, struct passwd **result) {
	return getpwnam_r(name, pwd, buf, buflen, result);
}

static int autouser_getpwuid_r(uid_t uid, struct passwd *pwd,
	char *buf, size_t buflen, struct passwd **result) {
	return getpwuid_r(uid, pwd, buf, buflen, result);
}
*/
import "C"

import (
	"context"
	"fmt"
	"syscall"
	"unsafe"
)

const maxLookupBufferSize = 1 << 20

func initialLookupBufferSize() C.size_t {
	sz := C.sysconf(C._SC_GETPW_R_SIZE_MAX)
	if sz <= 0 || int64(sz) > maxLookupBufferSize {
		return 1024
	}
	return C.size_t(sz)
}

// retryWithGrowingBuffer calls f with buffers of increasing size until
// it succeeds or fails with something other than ERANGE, mirroring the
// reentrant-lookup retry loop the cgo getpwnam_r family requires its
// callers to implement themselves.
func retryWithGrowingBuffer(f func(buf unsafe.Pointer, size C.size_t) syscall.Errno) error {
	size := initialLookupBufferSize()
	for {
		buf := C.malloc(size)
		errno := f(buf, size)
		C.free(buf)

		if errno == 0 {
			return nil
		}
		if errno != syscall.ERANGE {
			return errno
		}
		size *= 2
		if int64(size) > maxLookupBufferSize {
			return fmt.Errorf("autouser: lookup buffer exceeds %d bytes", maxLookupBufferSize)
		}
	}
}

func passwdFromC(pwd *C.struct_passwd) *Passwd {
	return &Passwd{
		Name:   C.GoString(pwd.pw_name),
		Passwd: C.GoString(pwd.pw_passwd),
		Gecos:  C.GoString(pwd.pw_gecos),
		Dir:    C.GoString(pwd.pw_dir),
		Shell:  C.GoString(pwd.pw_shell),
		UID:    uint32(pwd.pw_uid),
		GID:    uint32(pwd.pw_gid),
	}
}

// OSDirectory resolves names and uids against the host's NSS-configured
// user database via getpwnam_r/getpwuid_r, reentrantly. This is the
// backend a production deployment uses, matching the original module's
// recursive self-lookup through glibc.
type OSDirectory struct{}

func (OSDirectory) Lookup(_ context.Context, name string) (*Passwd, bool, error) {
	nameC := C.CString(name)
	defer C.free(unsafe.Pointer(nameC))

	var cpwd C.struct_passwd
	var result *C.struct_passwd
	err := retryWithGrowingBuffer(func(buf unsafe.Pointer, size C.size_t) syscall.Errno {
		return syscall.Errno(C.autouser_getpwnam_r(nameC, &cpwd, (*C.char)(buf), size, &result))
	})
	if err != nil {
		return nil, false, err
	}
	if result == nil {
		return nil, false, nil
	}
	return passwdFromC(&cpwd), true, nil
}

func (OSDirectory) Exists(_ context.Context, uid uint32) (bool, error) {
	var cpwd C.struct_passwd
	var result *C.struct_passwd
	err := retryWithGrowingBuffer(func(buf unsafe.Pointer, size C.size_t) syscall.Errno {
		return syscall.Errno(C.autouser_getpwuid_r(C.uid_t(uid), &cpwd, (*C.char)(buf), size, &result))
	})
	if err != nil {
		return false, err
	}
	return result != nil, nil
}
