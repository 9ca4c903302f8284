package grpc

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	googlegrpc "google.golang.org/grpc"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	pb "github.com/Sigma-Snaken/kachaka-sdk-toolkit/proto/kachaka_api"
)

// Client implements api.Client over the robot's gRPC surface.
type Client struct {
	conn   *googlegrpc.ClientConn
	client pb.KachakaApiClient
}

// NewClient wraps an already dialed connection.
func NewClient(conn *googlegrpc.ClientConn) *Client {
	return &Client{conn: conn, client: pb.NewKachakaApiClient(conn)}
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func getReq() *pb.GetRequest {
	return &pb.GetRequest{Metadata: &pb.Metadata{Cursor: 0}}
}

func resultFromProto(r *pb.Result) api.Result {
	if r == nil {
		return api.Result{}
	}
	return api.Result{Success: r.GetSuccess(), ErrorCode: int(r.GetErrorCode())}
}

func poseFromProto(p *pb.Pose) api.Pose {
	return api.Pose{X: p.GetX(), Y: p.GetY(), Theta: p.GetTheta()}
}

// GetRobotSerialNumber implements api.Client.
func (c *Client) GetRobotSerialNumber(ctx context.Context) (string, error) {
	resp, err := c.client.GetRobotSerialNumber(ctx, getReq())
	if err != nil {
		return "", err
	}
	return resp.GetSerialNumber(), nil
}

// GetRobotVersion implements api.Client.
func (c *Client) GetRobotVersion(ctx context.Context) (string, error) {
	resp, err := c.client.GetRobotVersion(ctx, getReq())
	if err != nil {
		return "", err
	}
	return resp.GetVersion(), nil
}

// GetRobotPose implements api.Client.
func (c *Client) GetRobotPose(ctx context.Context) (api.Pose, error) {
	resp, err := c.client.GetRobotPose(ctx, getReq())
	if err != nil {
		return api.Pose{}, err
	}
	return poseFromProto(resp.GetPose()), nil
}

// GetBatteryInfo implements api.Client.
func (c *Client) GetBatteryInfo(ctx context.Context) (api.BatteryInfo, error) {
	resp, err := c.client.GetBatteryInfo(ctx, getReq())
	if err != nil {
		return api.BatteryInfo{}, err
	}
	return api.BatteryInfo{
		Percent:     int(math.Round(resp.GetRemainingPercentage())),
		PowerStatus: api.PowerSupplyStatus(resp.GetPowerSupplyStatus()),
	}, nil
}

// GetShelves implements api.Client.
func (c *Client) GetShelves(ctx context.Context) ([]api.Shelf, error) {
	resp, err := c.client.GetShelves(ctx, getReq())
	if err != nil {
		return nil, err
	}
	shelves := make([]api.Shelf, 0, len(resp.GetShelves()))
	for _, s := range resp.GetShelves() {
		shelves = append(shelves, api.Shelf{
			ID:             s.GetId(),
			Name:           s.GetName(),
			HomeLocationID: s.GetHomeLocationId(),
		})
	}
	return shelves, nil
}

// GetLocations implements api.Client.
func (c *Client) GetLocations(ctx context.Context) ([]api.Location, error) {
	resp, err := c.client.GetLocations(ctx, getReq())
	if err != nil {
		return nil, err
	}
	locations := make([]api.Location, 0, len(resp.GetLocations()))
	for _, l := range resp.GetLocations() {
		locations = append(locations, api.Location{
			ID:   l.GetId(),
			Name: l.GetName(),
			Type: int(l.GetType()),
			Pose: poseFromProto(l.GetPose()),
		})
	}
	return locations, nil
}

// GetMapList implements api.Client.
func (c *Client) GetMapList(ctx context.Context) ([]api.MapInfo, error) {
	resp, err := c.client.GetMapList(ctx, getReq())
	if err != nil {
		return nil, err
	}
	maps := make([]api.MapInfo, 0, len(resp.GetMapListEntries()))
	for _, m := range resp.GetMapListEntries() {
		maps = append(maps, api.MapInfo{ID: m.GetId(), Name: m.GetName()})
	}
	return maps, nil
}

// GetCurrentMapID implements api.Client.
func (c *Client) GetCurrentMapID(ctx context.Context) (string, error) {
	resp, err := c.client.GetCurrentMapId(ctx, getReq())
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

// GetShortcuts implements api.Client.
func (c *Client) GetShortcuts(ctx context.Context) ([]api.Shortcut, error) {
	resp, err := c.client.GetShortcuts(ctx, getReq())
	if err != nil {
		return nil, err
	}
	shortcuts := make([]api.Shortcut, 0, len(resp.GetShortcuts()))
	for _, s := range resp.GetShortcuts() {
		shortcuts = append(shortcuts, api.Shortcut{ID: s.GetId(), Name: s.GetName()})
	}
	return shortcuts, nil
}

func commandToProto(cmd api.Command) (*pb.Command, error) {
	switch v := cmd.(type) {
	case api.MoveToLocation:
		return &pb.Command{Command: &pb.Command_MoveToLocationCommand{
			MoveToLocationCommand: &pb.MoveToLocationCommand{TargetLocationId: v.TargetLocationID},
		}}, nil
	case api.MoveToPose:
		return &pb.Command{Command: &pb.Command_MoveToPoseCommand{
			MoveToPoseCommand: &pb.MoveToPoseCommand{X: v.X, Y: v.Y, Yaw: v.Yaw},
		}}, nil
	case api.MoveForward:
		return &pb.Command{Command: &pb.Command_MoveForwardCommand{
			MoveForwardCommand: &pb.MoveForwardCommand{DistanceMeter: v.DistanceMeter, Speed: v.Speed},
		}}, nil
	case api.RotateInPlace:
		return &pb.Command{Command: &pb.Command_RotateInPlaceCommand{
			RotateInPlaceCommand: &pb.RotateInPlaceCommand{AngleRadian: v.AngleRadian},
		}}, nil
	case api.ReturnHome:
		return &pb.Command{Command: &pb.Command_ReturnHomeCommand{
			ReturnHomeCommand: &pb.ReturnHomeCommand{},
		}}, nil
	case api.MoveShelf:
		return &pb.Command{Command: &pb.Command_MoveShelfCommand{
			MoveShelfCommand: &pb.MoveShelfCommand{
				TargetShelfId:         v.TargetShelfID,
				DestinationLocationId: v.DestinationLocationID,
			},
		}}, nil
	case api.ReturnShelf:
		return &pb.Command{Command: &pb.Command_ReturnShelfCommand{
			ReturnShelfCommand: &pb.ReturnShelfCommand{TargetShelfId: v.TargetShelfID},
		}}, nil
	case api.DockShelf:
		return &pb.Command{Command: &pb.Command_DockShelfCommand{
			DockShelfCommand: &pb.DockShelfCommand{},
		}}, nil
	case api.UndockShelf:
		return &pb.Command{Command: &pb.Command_UndockShelfCommand{
			UndockShelfCommand: &pb.UndockShelfCommand{},
		}}, nil
	case api.Speak:
		return &pb.Command{Command: &pb.Command_SpeakCommand{
			SpeakCommand: &pb.SpeakCommand{Text: v.Text},
		}}, nil
	case api.SetSpeakerVolume:
		return &pb.Command{Command: &pb.Command_SetSpeakerVolumeCommand{
			SetSpeakerVolumeCommand: &pb.SetSpeakerVolumeCommand{Volume: int32(v.Volume)},
		}}, nil
	default:
		return nil, errors.Errorf("unknown command type %T", cmd)
	}
}

// StartCommand implements api.Client.
func (c *Client) StartCommand(
	ctx context.Context,
	cmd api.Command,
	opts api.CommandOptions,
) (api.Result, string, error) {
	pbCmd, err := commandToProto(cmd)
	if err != nil {
		return api.Result{}, "", err
	}
	resp, err := c.client.StartCommand(ctx, &pb.StartCommandRequest{
		Command:      pbCmd,
		CancelAll:    opts.CancelAll,
		TtsOnSuccess: opts.TTSOnSuccess,
		Title:        opts.Title,
	})
	if err != nil {
		return api.Result{}, "", err
	}
	return resultFromProto(resp.GetResult()), resp.GetCommandId(), nil
}

// GetCommandState implements api.Client.
func (c *Client) GetCommandState(ctx context.Context) (api.CommandState, string, error) {
	resp, err := c.client.GetCommandState(ctx, getReq())
	if err != nil {
		return api.CommandStateUnspecified, "", err
	}
	return api.CommandState(resp.GetState()), resp.GetCommandId(), nil
}

// GetLastCommandResult implements api.Client.
func (c *Client) GetLastCommandResult(ctx context.Context) (api.Result, string, error) {
	resp, err := c.client.GetLastCommandResult(ctx, getReq())
	if err != nil {
		return api.Result{}, "", err
	}
	return resultFromProto(resp.GetResult()), resp.GetCommandId(), nil
}

// IsCommandRunning implements api.Client.
func (c *Client) IsCommandRunning(ctx context.Context) (bool, error) {
	resp, err := c.client.IsCommandRunning(ctx, getReq())
	if err != nil {
		return false, err
	}
	return resp.GetRunning(), nil
}

// CancelCommand implements api.Client.
func (c *Client) CancelCommand(ctx context.Context) (api.Result, error) {
	resp, err := c.client.CancelCommand(ctx, &pb.EmptyRequest{})
	if err != nil {
		return api.Result{}, err
	}
	return resultFromProto(resp.GetResult()), nil
}

// Proceed implements api.Client.
func (c *Client) Proceed(ctx context.Context) (api.Result, error) {
	resp, err := c.client.Proceed(ctx, &pb.EmptyRequest{})
	if err != nil {
		return api.Result{}, err
	}
	return resultFromProto(resp.GetResult()), nil
}

// GetHistoryList implements api.Client.
func (c *Client) GetHistoryList(ctx context.Context) ([]api.HistoryEntry, error) {
	resp, err := c.client.GetHistoryList(ctx, getReq())
	if err != nil {
		return nil, err
	}
	entries := make([]api.HistoryEntry, 0, len(resp.GetHistories()))
	for _, h := range resp.GetHistories() {
		entries = append(entries, api.HistoryEntry{
			ID:         h.GetId(),
			Command:    h.GetCommand().String(),
			Success:    h.GetSuccess(),
			ErrorCode:  int(h.GetErrorCode()),
			ExecutedAt: time.Unix(0, h.GetCommandExecutedTime()*int64(time.Millisecond)),
		})
	}
	return entries, nil
}

// GetMovingShelfID implements api.Client.
func (c *Client) GetMovingShelfID(ctx context.Context) (string, error) {
	resp, err := c.client.GetMovingShelfId(ctx, getReq())
	if err != nil {
		return "", err
	}
	return resp.GetShelfId(), nil
}

// ResetShelfPose implements api.Client.
func (c *Client) ResetShelfPose(ctx context.Context, shelfID string) (api.Result, error) {
	resp, err := c.client.ResetShelfPose(ctx, &pb.ResetShelfPoseRequest{ShelfId: shelfID})
	if err != nil {
		return api.Result{}, err
	}
	return resultFromProto(resp.GetResult()), nil
}

// GetRobotErrorCode implements api.Client.
func (c *Client) GetRobotErrorCode(ctx context.Context) (map[int]api.ErrorDefinition, error) {
	resp, err := c.client.GetRobotErrorCode(ctx, &pb.EmptyRequest{})
	if err != nil {
		return nil, err
	}
	catalog := make(map[int]api.ErrorDefinition, len(resp.GetErrorCodes()))
	for _, e := range resp.GetErrorCodes() {
		catalog[int(e.GetCode())] = api.ErrorDefinition{
			Code:        int(e.GetCode()),
			Title:       e.GetTitle(),
			TitleEn:     e.GetTitleEn(),
			Description: e.GetDescription(),
		}
	}
	return catalog, nil
}

// GetActiveErrors implements api.Client.
func (c *Client) GetActiveErrors(ctx context.Context) ([]int, error) {
	resp, err := c.client.GetError(ctx, getReq())
	if err != nil {
		return nil, err
	}
	codes := make([]int, 0, len(resp.GetErrorCodes()))
	for _, code := range resp.GetErrorCodes() {
		codes = append(codes, int(code))
	}
	return codes, nil
}

// GetFrontCameraRosCompressedImage implements api.Client.
func (c *Client) GetFrontCameraRosCompressedImage(ctx context.Context) (api.RosCompressedImage, error) {
	resp, err := c.client.GetFrontCameraRosCompressedImage(ctx, getReq())
	if err != nil {
		return api.RosCompressedImage{}, err
	}
	img := resp.GetImage()
	return api.RosCompressedImage{Format: img.GetFormat(), Data: img.GetData()}, nil
}

// GetBackCameraRosCompressedImage implements api.Client.
func (c *Client) GetBackCameraRosCompressedImage(ctx context.Context) (api.RosCompressedImage, error) {
	resp, err := c.client.GetBackCameraRosCompressedImage(ctx, getReq())
	if err != nil {
		return api.RosCompressedImage{}, err
	}
	img := resp.GetImage()
	return api.RosCompressedImage{Format: img.GetFormat(), Data: img.GetData()}, nil
}

// GetObjectDetection implements api.Client.
func (c *Client) GetObjectDetection(ctx context.Context) ([]api.ObjectDetection, error) {
	resp, err := c.client.GetObjectDetection(ctx, getReq())
	if err != nil {
		return nil, err
	}
	objects := make([]api.ObjectDetection, 0, len(resp.GetObjects()))
	for _, o := range resp.GetObjects() {
		roi := o.GetRoi()
		objects = append(objects, api.ObjectDetection{
			Label: int(o.GetLabel()),
			ROI: api.ROI{
				X:      int(roi.GetXOffset()),
				Y:      int(roi.GetYOffset()),
				Width:  int(roi.GetWidth()),
				Height: int(roi.GetHeight()),
			},
			Score:          float64(o.GetScore()),
			DistanceMedian: o.GetDistanceMedian(),
		})
	}
	return objects, nil
}

// GetPngMap implements api.Client.
func (c *Client) GetPngMap(ctx context.Context) (api.PngMap, error) {
	resp, err := c.client.GetPngMap(ctx, getReq())
	if err != nil {
		return api.PngMap{}, err
	}
	m := resp.GetMap()
	return api.PngMap{
		Data:       m.GetData(),
		Name:       m.GetName(),
		Resolution: m.GetResolution(),
		Width:      int(m.GetWidth()),
		Height:     int(m.GetHeight()),
	}, nil
}

// GetSpeakerVolume implements api.Client.
func (c *Client) GetSpeakerVolume(ctx context.Context) (int, error) {
	resp, err := c.client.GetSpeakerVolume(ctx, getReq())
	if err != nil {
		return 0, err
	}
	return int(resp.GetVolume()), nil
}

// SetManualControlEnabled implements api.Client.
func (c *Client) SetManualControlEnabled(ctx context.Context, enable bool) (api.Result, error) {
	resp, err := c.client.SetManualControlEnabled(ctx, &pb.SetManualControlEnabledRequest{Enable: enable})
	if err != nil {
		return api.Result{}, err
	}
	return resultFromProto(resp.GetResult()), nil
}

// SetRobotVelocity implements api.Client.
func (c *Client) SetRobotVelocity(ctx context.Context, linear, angular float64) (api.Result, error) {
	resp, err := c.client.SetRobotVelocity(ctx, &pb.SetRobotVelocityRequest{Linear: linear, Angular: angular})
	if err != nil {
		return api.Result{}, err
	}
	return resultFromProto(resp.GetResult()), nil
}

// SetRobotStop implements api.Client.
func (c *Client) SetRobotStop(ctx context.Context) (api.Result, error) {
	resp, err := c.client.SetRobotStop(ctx, &pb.EmptyRequest{})
	if err != nil {
		return api.Result{}, err
	}
	return resultFromProto(resp.GetResult()), nil
}
