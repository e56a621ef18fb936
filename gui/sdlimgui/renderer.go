// This file is part of Kwasny Owoc.
//
// Kwasny Owoc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kwasny Owoc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Kwasny Owoc.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"github.com/inkyblackness/imgui-go/v4"
)

// the renderer turns the imgui draw data into pixels. there is only one
// implementation at the moment (see gl21.go) but keeping the interface makes
// the renderer's footprint on the rest of the package obvious.
type renderer interface {
	start() error
	destroy()
	preRender()
	render()
	addFontTexture(fnts imgui.FontAtlas) texture
}

type texture interface {
	getID() uint32
}
