package icon

import (
	"strconv"
	"testing"

	"github.com/remuco-cli/remuco/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := Success; i <= Volume; i++ {
			Convey("icon="+strconv.Itoa(int(i)), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(i), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It renders nothing for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Playing), ShouldBeEmpty)
		})

		Convey("An unregistered icon renders nothing", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(0)), ShouldBeEmpty)
		})
	})
}
