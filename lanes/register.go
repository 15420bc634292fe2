// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import (
	"unsafe"

	"github.com/ajroetker/go-lanes/internal/caps"
)

// maxRegisterBytes is the widest register of any tier (AVX-512).
const maxRegisterBytes = 64

// register is the image of one native vector register. Only the first
// caps.RegisterBytes bytes are meaningful; the rest stay zero. The uint64
// element type keeps every lane view aligned.
type register [maxRegisterBytes / 8]uint64

// regMask is the result of one per-register comparison. Full-vector tiers
// fill vec with all-ones/all-zeros lanes; the packed tier fills bits with one
// bit per lane, lane i at bit i.
type regMask struct {
	vec  register
	bits uint64
}

func (r *register) bytes() *[64]byte  { return (*[64]byte)(unsafe.Pointer(r)) }
func (r *register) i8() *[64]int8     { return (*[64]int8)(unsafe.Pointer(r)) }
func (r *register) u8() *[64]uint8    { return (*[64]uint8)(unsafe.Pointer(r)) }
func (r *register) i16() *[32]int16   { return (*[32]int16)(unsafe.Pointer(r)) }
func (r *register) u16() *[32]uint16  { return (*[32]uint16)(unsafe.Pointer(r)) }
func (r *register) i32() *[16]int32   { return (*[16]int32)(unsafe.Pointer(r)) }
func (r *register) u32() *[16]uint32  { return (*[16]uint32)(unsafe.Pointer(r)) }
func (r *register) f32() *[16]float32 { return (*[16]float32)(unsafe.Pointer(r)) }
func (r *register) i64() *[8]int64    { return (*[8]int64)(unsafe.Pointer(r)) }
func (r *register) u64() *[8]uint64   { return (*[8]uint64)(r) }
func (r *register) f64() *[8]float64  { return (*[8]float64)(unsafe.Pointer(r)) }

// lane returns the raw bits of lane i of kind k.
func (r *register) lane(k LaneKind, i int) uint64 {
	switch k.Size() {
	case 1:
		return uint64(r.u8()[i])
	case 2:
		return uint64(r.u16()[i])
	case 4:
		return uint64(r.u32()[i])
	default:
		return r.u64()[i]
	}
}

// setLane stores the low bits of v into lane i of kind k.
func (r *register) setLane(k LaneKind, i int, v uint64) {
	switch k.Size() {
	case 1:
		r.u8()[i] = uint8(v)
	case 2:
		r.u16()[i] = uint16(v)
	case 4:
		r.u32()[i] = uint32(v)
	default:
		r.u64()[i] = v
	}
}

// sub returns the 16-byte part i of r in the low half of a new register.
func (r *register) sub(i int) (s register) {
	s[0], s[1] = r[2*i], r[2*i+1]
	return s
}

// setSub stores the low 16 bytes of s as part i of r.
func (r *register) setSub(i int, s *register) {
	r[2*i], r[2*i+1] = s[0], s[1]
}

func bytesOf[T Lanes](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// loadRegister copies src into the low lanes of a zeroed register image.
// len(src) must not exceed one register.
func loadRegister[T Lanes](src []T) (r register) {
	copy(r.bytes()[:], bytesOf(src))
	return r
}

// storeRegister copies the low len(dst) lanes of r into dst.
func storeRegister[T Lanes](dst []T, r *register) {
	copy(bytesOf(dst), r.bytes()[:])
}

// registerLanes returns how many lanes of kind k one native register holds.
func registerLanes(k LaneKind) int {
	return caps.RegisterBytes / k.Size()
}

// laneMask returns a mask with the low n bits set.
func laneMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}
