package bridge

import (
	"strconv"

	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/remote"
	"github.com/samber/mo"
)

func plobFromInfo(id string, info ipc.MediaInfo) *remote.Plob {
	plob := remote.NewPlob(id)

	text := func(name string, v mo.Option[string]) {
		if s, ok := v.Get(); ok {
			plob.Set(name, s)
		}
	}
	number := func(name string, v mo.Option[int]) {
		if n, ok := v.Get(); ok {
			plob.Set(name, strconv.Itoa(n))
		}
	}

	text(remote.MetaArtist, info.Artist)
	text(remote.MetaAlbum, info.Album)
	text(remote.MetaTitle, info.Title)
	text(remote.MetaGenre, info.Genre)
	text(remote.MetaComment, info.Comment)
	number(remote.MetaTrack, info.TrackNr)
	// milliseconds to seconds
	number(remote.MetaLength, info.Duration.Map(func(ms int) (int, bool) { return ms / 1000, true }))
	number(remote.MetaBitrate, info.Bitrate)
	number(remote.MetaRating, info.Rating)
	text(remote.MetaArt, info.Art)

	return plob
}
