package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the filesystem backend", t, func() {
		Convey("It should default to the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It should switch to memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Given a directory with files", t, func() {
		SetMemMapFs()
		dir := "/cache"
		lo.Must0(API().MkdirAll(filepath.Join(dir, "sub"), 0o755))
		lo.Must0(API().WriteFile(filepath.Join(dir, "a"), []byte("12345"), 0o644))
		lo.Must0(API().WriteFile(filepath.Join(dir, "sub", "b"), []byte("123"), 0o644))

		Convey("Size should sum every file", func() {
			size, err := Size(dir)
			So(err, ShouldBeNil)
			So(size, ShouldEqual, 8)
		})

		Convey("Clear should empty it and report the freed bytes", func() {
			freed, err := Clear(dir)
			So(err, ShouldBeNil)
			So(freed, ShouldEqual, 8)

			entries, err := API().ReadDir(dir)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
			So(lo.Must(API().IsDir(dir)), ShouldBeTrue)
		})

		Convey("Clear should ignore a missing directory", func() {
			freed, err := Clear("/missing")
			So(err, ShouldBeNil)
			So(freed, ShouldEqual, 0)
		})
	})
}
