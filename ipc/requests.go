package ipc

// ActivePlaylist names whichever playlist the player is currently playing from.
const ActivePlaylist = "_active"

func (c *Client) PlaybackStatus() *Result {
	return c.request("playback_status")
}

func (c *Client) VolumeGet() *Result {
	return c.request("playback_volume_get")
}

func (c *Client) CurrentID() *Result {
	return c.request("playback_current_id")
}

func (c *Client) CurrentPos() *Result {
	return c.request("playlist_current_pos", ActivePlaylist)
}

// ListEntries lists the medialib ids of a playlist in order.
func (c *Client) ListEntries(playlist string) *Result {
	return c.request("playlist_list_entries", playlist)
}

// PlaylistList lists the names of all stored playlists.
func (c *Client) PlaylistList() *Result {
	return c.request("playlist_list")
}

func (c *Client) MedialibGetInfo(id uint) *Result {
	return c.request("medialib_get_info", id)
}

// SetNext selects the zero-based playlist position to play next.
func (c *Client) SetNext(pos int) *Result {
	return c.request("playlist_set_next", pos)
}

func (c *Client) SetNextRel(delta int) *Result {
	return c.request("playlist_set_next_rel", delta)
}

func (c *Client) VolumeSet(channel string, volume int) *Result {
	return c.request("playback_volume_set", channel, volume)
}

func (c *Client) Start() *Result {
	return c.request("playback_start")
}

func (c *Client) Pause() *Result {
	return c.request("playback_pause")
}

func (c *Client) Stop() *Result {
	return c.request("playback_stop")
}

// Tickle makes the player jump to the next entry set by SetNext right away.
func (c *Client) Tickle() *Result {
	return c.request("playback_tickle")
}

func (c *Client) PlaylistLoad(name string) *Result {
	return c.request("playlist_load", name)
}

func (c *Client) PropertySetInt(id uint, key string, value int) *Result {
	return c.request("medialib_entry_property_set_int", id, key, value)
}
