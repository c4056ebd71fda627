//go:build android && cgo

package main

/*
#include <jni.h>
#include <stdlib.h>

// Defined in jni_android.c; the preamble of a file with //export may only
// declare.
jsize arrayLength(JNIEnv *env, jfloatArray arr);
jfloat *getFloatElements(JNIEnv *env, jfloatArray arr);
void releaseFloatElements(JNIEnv *env, jfloatArray arr, jfloat *elems, jint mode);
void throwIllegalArgument(JNIEnv *env, const char *msg);
*/
import "C"

import (
	"unsafe"

	"github.com/peyilo/pagemesh"
	"github.com/peyilo/pagemesh/internal/bridge"
)

// floatArray adapts a jfloatArray to bridge.HostArray.
type floatArray struct {
	env   *C.JNIEnv
	arr   C.jfloatArray
	elems *C.jfloat
}

func (a *floatArray) Len() int {
	return int(C.arrayLength(a.env, a.arr))
}

func (a *floatArray) Acquire() ([]float32, error) {
	n := a.Len()
	a.elems = C.getFloatElements(a.env, a.arr)
	if a.elems == nil {
		return nil, bridge.ErrAcquire
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(a.elems)), n), nil
}

func (a *floatArray) Release(mode bridge.ReleaseMode) {
	C.releaseFloatElements(a.env, a.arr, a.elems, C.jint(mode))
	a.elems = nil
}

//export Java_org_peyilo_libreadview_manager_render_IBookCurlRenderer_nativeInitMeshVerts
func Java_org_peyilo_libreadview_manager_render_IBookCurlRenderer_nativeInitMeshVerts(
	env *C.JNIEnv,
	thiz C.jobject,
	verts C.jfloatArray,
	pageWidth, pageHeight C.jfloat,
	meshWidth, meshHeight C.jint,
) {
	s := pagemesh.NewSpec(float32(pageWidth), float32(pageHeight), int(meshWidth), int(meshHeight))
	arr := &floatArray{env: env, arr: verts}
	if err := bridge.Fill(arr, s); err != nil {
		msg := C.CString(err.Error())
		defer C.free(unsafe.Pointer(msg))
		C.throwIllegalArgument(env, msg)
	}
}
