/*
Package font is for font descriptors and font requests.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "font family" is a family of fonts. An example is "Helvetica".

* A "font descriptor" is a concrete font resource, i.e. a variant of a family
with a certain weight, style and variant, residing in a file, behind a URL
or in memory. An example is "Helvetica bold italic" in /System/Library/Fonts.

* A "font request" is a set of font properties as given by CSS: a prioritized
list of family names, plus weight, style, variant and size. Requests are
resolved to descriptors by package query.

Descriptors are handled as pointers throughout. Two descriptors with identical
fields are still distinct fonts, e.g. the same family installed twice.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

----------------------------------------------------------------------

# BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontrun.font'
func tracer() tracing.Trace {
	return tracing.Select("fontrun.font")
}
