// Command readviewjni is built as a c-shared library and loaded by the
// reading app as libreadview.so:
//
//	CGO_ENABLED=1 GOOS=android GOARCH=arm64 CC=$NDK_CC \
//	    go build -buildmode=c-shared -o libreadview.so ./cmd/readviewjni
//
// It exports IBookCurlRenderer.nativeInitMeshVerts, which fills the
// renderer's mesh vertex array with pagemesh.Generate.
package main

func main() {}
