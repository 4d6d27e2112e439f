// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInvalidArg(t *testing.T) {
	err := NewInvalidArg(context.TODO(), "initial capacity", -1)
	require.Equal(t, "invalid argument initial capacity, bad value -1", err.Error())
	require.Equal(t, ErrInvalidArg, err.ErrorCode())
	require.False(t, err.Succeeded())
	require.True(t, IsMoErrCode(err, ErrInvalidArg))

	err = NewInvalidArgNoCtx("load factor", 1.1)
	require.Equal(t, "invalid argument load factor, bad value 1.1", err.Error())
	require.True(t, IsMoErrCode(err, ErrInvalidArg))
}

func TestNewInternalError(t *testing.T) {
	err := NewInternalErrorNoCtx("boom %d", 42)
	require.Equal(t, "internal error: boom 42", err.Error())
	require.True(t, IsMoErrCode(err, ErrInternal))
}

func TestIsMoErrCode(t *testing.T) {
	require.True(t, IsMoErrCode(nil, Ok))
	require.False(t, IsMoErrCode(nil, ErrInternal))
	require.False(t, IsMoErrCode(errors.New("plain"), ErrInternal))
	require.False(t, IsMoErrCode(NewInternalErrorNoCtx("x"), ErrInvalidArg))
}
