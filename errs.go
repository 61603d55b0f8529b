// Copyright (c) the simdrive authors. All rights reserved.
// Licensed under the MIT License.

package simdrive

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrEmptyCommand = constError("job has an empty command")
