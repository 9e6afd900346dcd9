package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toddjobe/roastomatic/controller"
)

type fakeController struct {
	presses []int
}

func (c *fakeController) PressButton(i int) { c.presses = append(c.presses, i) }
func (c *fakeController) ProgramName() string { return "Roast" }

type fakeInput struct {
	data []byte
}

func (in *fakeInput) Buffered() int { return len(in.data) }

func (in *fakeInput) ReadByte() (byte, error) {
	b := in.data[0]
	in.data = in.data[1:]
	return b, nil
}

func TestPollDispatchesButtonFlags(t *testing.T) {
	c := &fakeController{}
	in := &fakeInput{data: []byte("p+azc")}

	Poll(in, c)

	assert.Equal(t, []int{
		controller.BtnProgram,
		controller.BtnPower,
		controller.BtnAuto,
		controller.BtnZero,
		controller.BtnCalibrate,
	}, c.presses)
}

func TestPollIgnoresUnknownBytes(t *testing.T) {
	c := &fakeController{}
	in := &fakeInput{data: []byte("\r\nxq z\n")}

	Poll(in, c)

	assert.Equal(t, []int{controller.BtnZero}, c.presses)
}
