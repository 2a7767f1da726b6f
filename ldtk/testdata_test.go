package ldtk

const multiWorldJSON = `{
  "iid": "0f6a7f10-25d0-11ef-8d9b-000000000000",
  "jsonVersion": "1.5.3",
  "levels": [],
  "worlds": [
    {
      "iid": "0f6a7f10-25d0-11ef-8d9b-000000000001",
      "identifier": "Overworld",
      "levels": [
        {
          "identifier": "Meadow",
          "iid": "0f6a7f10-25d0-11ef-8d9b-000000000011",
          "worldX": 0, "worldY": 0, "worldDepth": 0,
          "__bgColor": "#112233",
          "layerInstances": [
            {
              "__identifier": "Ground", "__type": "IntGrid",
              "__cWid": 4, "__cHei": 4, "__gridSize": 16, "__opacity": 1,
              "__tilesetDefUid": 1, "overrideTilesetUid": 3, "visible": true,
              "gridTiles": [{"px": [0, 0], "src": [0, 0], "f": 1, "t": 0, "a": 1, "d": [0]}],
              "autoLayerTiles": []
            },
            {
              "__identifier": "Markers", "__type": "Entities",
              "__cWid": 4, "__cHei": 4, "__gridSize": 16, "__opacity": 1,
              "__tilesetDefUid": null, "overrideTilesetUid": null, "visible": true,
              "gridTiles": [], "autoLayerTiles": []
            }
          ]
        }
      ]
    },
    {
      "iid": "0f6a7f10-25d0-11ef-8d9b-000000000002",
      "identifier": "Underworld",
      "levels": [
        {
          "identifier": "Cave",
          "iid": "0f6a7f10-25d0-11ef-8d9b-000000000021",
          "worldX": -1, "worldY": -1, "worldDepth": 2,
          "__bgColor": "#000000",
          "layerInstances": null
        },
        {
          "identifier": "Pit",
          "iid": "0f6a7f10-25d0-11ef-8d9b-000000000022",
          "worldX": 64, "worldY": 128, "worldDepth": 1,
          "__bgColor": "#000000",
          "layerInstances": [
            {
              "__identifier": "Walls", "__type": "IntGrid",
              "__cWid": 2, "__cHei": 2, "__gridSize": 8, "__opacity": 1,
              "__tilesetDefUid": 1, "overrideTilesetUid": null, "visible": false,
              "gridTiles": [], "autoLayerTiles": []
            }
          ]
        }
      ]
    }
  ],
  "defs": {
    "tilesets": [
      {"uid": 1, "identifier": "Base", "relPath": "tiles/base.png", "tileGridSize": 16, "spacing": 0, "padding": 0, "__cWid": 4, "__cHei": 4, "pxWid": 64, "pxHei": 64},
      {"uid": 2, "identifier": "Spare", "relPath": null, "tileGridSize": 8, "spacing": 1, "padding": 2, "__cWid": 2, "__cHei": 2, "pxWid": 20, "pxHei": 20},
      {"uid": 3, "identifier": "Alt", "relPath": "tiles/alt.png", "tileGridSize": 16, "spacing": 0, "padding": 0, "__cWid": 2, "__cHei": 2, "pxWid": 32, "pxHei": 32}
    ]
  }
}`

const singleWorldJSON = `{
  "iid": "0f6a7f10-25d0-11ef-8d9b-0000000000aa",
  "jsonVersion": "1.5.3",
  "worlds": [],
  "levels": [
    {"identifier": "First", "iid": "0f6a7f10-25d0-11ef-8d9b-0000000000a1", "worldX": 0, "worldY": 0, "layerInstances": []},
    {"identifier": "Second", "iid": "0f6a7f10-25d0-11ef-8d9b-0000000000a2", "worldX": 256, "worldY": 0, "layerInstances": []}
  ],
  "defs": {"tilesets": []}
}`
