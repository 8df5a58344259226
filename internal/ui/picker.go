package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/wlaninfo/internal/labels"
	"github.com/muurk/wlaninfo/internal/wlan"
)

// ErrCancelled is returned by Pick when the user leaves without choosing.
var ErrCancelled = errors.New("selection cancelled")

// pickerKeyMap defines key bindings for the network list
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Filter key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Filter, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Choose},
		{k.Filter, k.Quit},
	}
}

// passwordKeyMap defines key bindings for password entry
type passwordKeyMap struct {
	Confirm key.Binding
	Back    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k passwordKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k passwordKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Back}}
}

// networkItem wraps a Network for use with bubbles/list
type networkItem struct {
	network wlan.Network
}

func (n networkItem) FilterValue() string {
	return n.network.SSID.Or("") + " " + n.network.BSSID.Or("")
}

func (n networkItem) Title() string {
	return n.network.SSID.Or("(hidden)")
}

func (n networkItem) Description() string {
	ch := n.network.Channel
	return fmt.Sprintf("%s • ch %d (%s) • %d dBm • %s",
		n.network.BSSID, ch.Number, ch.Band, n.network.RSSI, n.network.Security)
}

// PickerModel is the Bubble Tea model behind NetworkPicker.
type PickerModel struct {
	List          list.Model
	PasswordInput textinput.Model
	Help          help.Model
	Keys          pickerKeyMap
	PasswordKeys  passwordKeyMap

	// PasswordMode is set while the password of the chosen network is entered.
	PasswordMode bool
	Chosen       *wlan.Network
	Done         bool
	Cancelled    bool
}

// NewPickerModel creates a picker over networks.
func NewPickerModel(networks []wlan.Network) PickerModel {
	items := make([]list.Item, len(networks))
	for i, n := range networks {
		items[i] = networkItem{network: n}
	}

	width, height := GetTerminalSize()
	networkList := list.New(items, list.NewDefaultDelegate(), width, max(height-4, 10))
	networkList.Title = "Choose a network"
	networkList.SetShowStatusBar(false)
	networkList.SetShowHelp(false)
	networkList.SetFilteringEnabled(true)
	networkList.Styles.Title = TitleStyle

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'
	passwordInput.CharLimit = 63 // WPA passphrase maximum
	passwordInput.Width = 40

	keys := pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "associate"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	passwordKeys := passwordKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}

	return PickerModel{
		List:          networkList,
		PasswordInput: passwordInput,
		Help:          help.New(),
		Keys:          keys,
		PasswordKeys:  passwordKeys,
	}
}

// Init implements tea.Model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.List.SetSize(msg.Width, max(msg.Height-4, 5))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Cancelled = true
			return m, tea.Quit
		}
		if m.PasswordMode {
			return m.updatePasswordMode(msg)
		}
		// While filtering, every key belongs to the list's filter input.
		if m.List.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.Keys.Quit):
				m.Cancelled = true
				return m, tea.Quit
			case key.Matches(msg, m.Keys.Choose):
				return m.choose()
			}
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m PickerModel) choose() (tea.Model, tea.Cmd) {
	item, ok := m.List.SelectedItem().(networkItem)
	if !ok {
		return m, nil
	}
	network := item.network
	m.Chosen = &network

	if network.Security == labels.SecurityNone {
		m.Done = true
		return m, tea.Quit
	}
	m.PasswordMode = true
	m.PasswordInput.SetValue("")
	cmd := m.PasswordInput.Focus()
	return m, cmd
}

func (m PickerModel) updatePasswordMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.PasswordKeys.Back):
		m.PasswordMode = false
		m.Chosen = nil
		m.PasswordInput.Blur()
		m.PasswordInput.SetValue("")
		return m, nil
	case key.Matches(msg, m.PasswordKeys.Confirm):
		m.Done = true
		m.PasswordInput.Blur()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.PasswordInput, cmd = m.PasswordInput.Update(msg)
	return m, cmd
}

// Password returns the entered password.
func (m PickerModel) Password() string {
	return m.PasswordInput.Value()
}

// View implements tea.Model
func (m PickerModel) View() string {
	if m.Done || m.Cancelled {
		return ""
	}

	var b strings.Builder
	if m.PasswordMode {
		b.WriteString("\n")
		b.WriteString(PromptStyle.Render("Password for " + m.Chosen.SSID.Or(m.Chosen.BSSID.String())))
		b.WriteString("\n\n  ")
		b.WriteString(m.PasswordInput.View())
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(m.Chosen.Security.String()))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(m.Help.View(m.PasswordKeys)))
		return b.String()
	}

	b.WriteString(m.List.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))
	return b.String()
}

// NetworkPicker lets the user choose a network from scan results.
type NetworkPicker struct {
	in  io.Reader
	out io.Writer
}

// NewNetworkPicker creates a picker reading keys from in and drawing on out.
func NewNetworkPicker(in io.Reader, out io.Writer) *NetworkPicker {
	return &NetworkPicker{in: in, out: out}
}

// Pick runs the picker and returns the chosen network and password. The
// password is empty for open networks.
func (p *NetworkPicker) Pick(ctx context.Context, networks []wlan.Network) (wlan.Network, string, error) {
	if len(networks) == 0 {
		return wlan.Network{}, "", errors.New("no networks found to choose from")
	}

	prog := tea.NewProgram(NewPickerModel(networks),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		return wlan.Network{}, "", fmt.Errorf("network picker failed: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok || m.Cancelled || !m.Done || m.Chosen == nil {
		return wlan.Network{}, "", ErrCancelled
	}
	return *m.Chosen, m.Password(), nil
}
